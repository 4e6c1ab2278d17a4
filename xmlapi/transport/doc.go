// Package transport provides the HTTP layer for Engage XML API submissions.
//
// The transport layer handles:
//   - HTTP/HTTPS POST of serialized documents
//   - TLS configuration
//   - Status classification (any non-2xx response is a StatusError)
package transport

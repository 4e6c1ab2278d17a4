// Package xmlapi implements the Engage XML API submission protocol: request
// encoding, session handling, response classification, and the single
// re-login retry an expired session is granted.
//
// # Protocol
//
// Every operation is an XML document POSTed to one endpoint URL:
//
//	Envelope/Body/<Operation>...   ->  POST endpoint;jsessionid=<token>
//	                               <-  Envelope/Body/RESULT | Fault
//
// The session token is carried as a jsessionid matrix parameter on the URL.
// Login requests go to the bare endpoint; all other requests append the
// suffix even before a token is held, because the server answers those with
// the session-expiry fault (errorid 140) that drives recovery:
//
//	Submit ──> POST ──> RESULT.SUCCESS?
//	                      │yes                │no, errorid 140, first try
//	                      ▼                   ▼
//	                   RESULT         Login ──> POST again (final)
//
// Recovery happens at most once per submission, and only for fault 140.
// Transport and decode failures are never retried.
//
// # Subpackages
//
//   - transport: HTTP/TLS POST layer
package xmlapi

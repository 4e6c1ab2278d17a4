// Package xmlmap implements a schema-less codec between a generic tree of
// mappings, sequences, and scalars and the element-only XML dialect used by
// the Engage API.
//
// The mapping convention is intentionally simple:
//
//   - A Mapping pair (key, value) becomes a child element named key.
//   - A Sequence under a key becomes repeated sibling elements, one per item,
//     all named key.
//   - A Scalar becomes element text.
//
// Decoding inverts this: an element with no child elements becomes a Scalar
// of its trimmed text, and an element with children becomes a Mapping whose
// direct children are grouped by tag name. A tag that occurs once binds its
// value directly; a tag that occurs two or more times binds a Sequence in
// document order.
//
// # Asymmetry
//
// Because element count is the only signal, a one-item Sequence encodes to a
// single element and decodes back as a plain value, and every Scalar decodes
// as a string. Consumers of decoded trees must accept either shape; Values
// exists for exactly that.
//
// Attributes, namespaces, comments, and mixed content are outside the dialect
// and are ignored on decode.
package xmlmap

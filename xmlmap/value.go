package xmlmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// Scalar is a leaf holding character data.
	Scalar Kind = iota

	// Mapping is an insertion-ordered set of key/value pairs. Keys are
	// element names.
	Mapping

	// Sequence is an ordered list of values that share one element name.
	Sequence
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pair is one entry of a Mapping.
type Pair struct {
	Key string
	Val *Value
}

// Value is one node of a generic XML-mapped tree. The zero value is an empty
// scalar; use the constructors for anything else. Accessors tolerate nil
// receivers so lookups can be chained without intermediate checks:
//
//	id := tree.Get("Envelope").Get("Body").Get("RESULT").Get("JOB_ID").Text()
type Value struct {
	kind  Kind
	text  string
	pairs []Pair
	items []*Value
}

// String returns a scalar holding s.
func String(s string) *Value {
	return &Value{kind: Scalar, text: s}
}

// Int returns a scalar holding the decimal rendering of n.
func Int(n int) *Value {
	return &Value{kind: Scalar, text: strconv.Itoa(n)}
}

// Flag returns an empty mapping, which encodes as an empty element. The
// Engage dialect uses bare elements such as <SCHEDULED/> as boolean flags.
func Flag() *Value {
	return &Value{kind: Mapping}
}

// NewMap returns an empty mapping.
func NewMap() *Value {
	return &Value{kind: Mapping}
}

// Seq returns a sequence of the given items.
func Seq(items ...*Value) *Value {
	return &Value{kind: Sequence, items: items}
}

// Set binds key to val, replacing an existing entry in place so insertion
// order is stable, and returns v for chaining. Set panics when v is not a
// mapping; building a tree with the wrong shape is a programming error.
func (v *Value) Set(key string, val *Value) *Value {
	if v == nil || v.kind != Mapping {
		panic("xmlmap: Set on non-mapping value")
	}
	for i := range v.pairs {
		if v.pairs[i].Key == key {
			v.pairs[i].Val = val
			return v
		}
	}
	v.pairs = append(v.pairs, Pair{Key: key, Val: val})
	return v
}

// Kind reports the variant held by v.
func (v *Value) Kind() Kind {
	if v == nil {
		return Scalar
	}
	return v.kind
}

// Text returns the scalar text, or "" when v is nil or not a scalar.
func (v *Value) Text() string {
	if v == nil || v.kind != Scalar {
		return ""
	}
	return v.text
}

// Get returns the value bound to key, or nil when v is nil, not a mapping,
// or the key is absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != Mapping {
		return nil
	}
	for _, p := range v.pairs {
		if p.Key == key {
			return p.Val
		}
	}
	return nil
}

// Len returns the number of pairs or items, and 0 for scalars and nil.
func (v *Value) Len() int {
	switch {
	case v == nil:
		return 0
	case v.kind == Mapping:
		return len(v.pairs)
	case v.kind == Sequence:
		return len(v.items)
	}
	return 0
}

// Pairs returns the mapping entries in insertion order. The slice is shared
// with v; callers must not modify it.
func (v *Value) Pairs() []Pair {
	if v == nil || v.kind != Mapping {
		return nil
	}
	return v.pairs
}

// Items returns the sequence items. The slice is shared with v; callers must
// not modify it.
func (v *Value) Items() []*Value {
	if v == nil || v.kind != Sequence {
		return nil
	}
	return v.items
}

// Values returns v viewed as a sequence: the items when v is a sequence, a
// one-element slice otherwise, and nil when v is nil. Decoded trees collapse
// single-item sequences, so consumers of repeated elements iterate Values
// rather than switching on Kind.
func (v *Value) Values() []*Value {
	switch {
	case v == nil:
		return nil
	case v.kind == Sequence:
		return v.items
	}
	return []*Value{v}
}

// String renders a compact debug form: scalars quoted, mappings braced,
// sequences bracketed.
func (v *Value) String() string {
	var b strings.Builder
	v.debug(&b)
	return b.String()
}

func (v *Value) debug(b *strings.Builder) {
	switch {
	case v == nil:
		b.WriteString("<nil>")
	case v.kind == Scalar:
		fmt.Fprintf(b, "%q", v.text)
	case v.kind == Mapping:
		b.WriteByte('{')
		for i, p := range v.pairs {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.Key)
			b.WriteByte(':')
			p.Val.debug(b)
		}
		b.WriteByte('}')
	case v.kind == Sequence:
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(' ')
			}
			item.debug(b)
		}
		b.WriteByte(']')
	}
}

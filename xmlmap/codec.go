package xmlmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ErrMalformedDocument reports input that could not be parsed as XML or that
// parsed to no root element. Decode errors wrap it; test with errors.Is.
var ErrMalformedDocument = errors.New("xmlmap: malformed document")

// Encode renders v as an XML document whose root element is named root.
func Encode(root string, v *Value) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := encodeInto(doc.CreateElement(root), v); err != nil {
		return nil, err
	}
	return doc, nil
}

// Marshal renders v as serialized XML rooted at root. No XML declaration is
// emitted; the Engage wire format is a bare document.
func Marshal(root string, v *Value) ([]byte, error) {
	doc, err := Encode(root, v)
	if err != nil {
		return nil, err
	}
	return doc.WriteToBytes()
}

func encodeInto(el *etree.Element, v *Value) error {
	if v == nil {
		// A nil value under a key is a bare flag element.
		return nil
	}
	switch v.kind {
	case Scalar:
		el.SetText(v.text)
	case Mapping:
		for _, p := range v.pairs {
			if p.Val.Kind() == Sequence {
				for _, item := range p.Val.items {
					if item.Kind() == Sequence {
						return fmt.Errorf("xmlmap: nested sequence under %q", p.Key)
					}
					if err := encodeInto(el.CreateElement(p.Key), item); err != nil {
						return err
					}
				}
				continue
			}
			if err := encodeInto(el.CreateElement(p.Key), p.Val); err != nil {
				return err
			}
		}
	case Sequence:
		// A sequence has no name of its own; only a mapping key can name
		// the repeated elements.
		return fmt.Errorf("xmlmap: sequence at %q needs an enclosing mapping key", el.Tag)
	}
	return nil
}

// Decode parses data and returns a one-entry mapping binding the root tag to
// the decoded root element.
func Decode(data []byte) (*Value, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}
	return NewMap().Set(root.Tag, decodeElement(root)), nil
}

func decodeElement(el *etree.Element) *Value {
	children := el.ChildElements()
	if len(children) == 0 {
		return String(strings.TrimSpace(el.Text()))
	}
	m := NewMap()
	for _, child := range children {
		v := decodeElement(child)
		switch prev := m.Get(child.Tag); {
		case prev == nil:
			m.Set(child.Tag, v)
		case prev.kind == Sequence:
			prev.items = append(prev.items, v)
		default:
			m.Set(child.Tag, Seq(prev, v))
		}
	}
	return m
}

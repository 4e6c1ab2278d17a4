package xmlmap

import (
	"reflect"
	"testing"
)

// TestValue_Constructors verifies each constructor produces the right variant.
func TestValue_Constructors(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		kind Kind
		text string
		len  int
	}{
		{"string", String("hello"), Scalar, "hello", 0},
		{"int", Int(42), Scalar, "42", 0},
		{"negative int", Int(-7), Scalar, "-7", 0},
		{"flag", Flag(), Mapping, "", 0},
		{"empty map", NewMap(), Mapping, "", 0},
		{"sequence", Seq(String("a"), String("b")), Sequence, "", 2},
		{"zero value", &Value{}, Scalar, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.v.Text(); got != tt.text {
				t.Errorf("Text() = %q, want %q", got, tt.text)
			}
			if got := tt.v.Len(); got != tt.len {
				t.Errorf("Len() = %d, want %d", got, tt.len)
			}
		})
	}
}

// TestValue_SetPreservesOrder verifies insertion order survives overwrites.
func TestValue_SetPreservesOrder(t *testing.T) {
	m := NewMap().
		Set("LIST_ID", Int(1)).
		Set("EMAIL", String("a@example.com")).
		Set("CREATED_FROM", Int(2))

	// Overwriting an existing key must keep its original position.
	m.Set("EMAIL", String("b@example.com"))

	wantKeys := []string{"LIST_ID", "EMAIL", "CREATED_FROM"}
	pairs := m.Pairs()
	if len(pairs) != len(wantKeys) {
		t.Fatalf("Len() = %d, want %d", len(pairs), len(wantKeys))
	}
	for i, p := range pairs {
		if p.Key != wantKeys[i] {
			t.Errorf("pair %d key = %q, want %q", i, p.Key, wantKeys[i])
		}
	}
	if got := m.Get("EMAIL").Text(); got != "b@example.com" {
		t.Errorf("Get(EMAIL) = %q, want overwritten value", got)
	}
}

// TestValue_SetPanicsOnScalar verifies shape misuse fails loudly.
func TestValue_SetPanicsOnScalar(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set on a scalar did not panic")
		}
	}()
	String("x").Set("k", String("v"))
}

// TestValue_NilChaining verifies lookups chain safely through absent paths.
func TestValue_NilChaining(t *testing.T) {
	tree := NewMap().Set("Envelope", NewMap().Set("Body", NewMap()))

	if got := tree.Get("Envelope").Get("Body").Get("RESULT").Get("SUCCESS").Text(); got != "" {
		t.Errorf("absent path Text() = %q, want empty", got)
	}
	if got := tree.Get("nope"); got != nil {
		t.Errorf("Get on absent key = %v, want nil", got)
	}
	var nilv *Value
	if got := nilv.Get("k"); got != nil {
		t.Errorf("Get on nil = %v, want nil", got)
	}
	if got := nilv.Values(); got != nil {
		t.Errorf("Values on nil = %v, want nil", got)
	}
	if got := nilv.Items(); got != nil {
		t.Errorf("Items on nil = %v, want nil", got)
	}
}

// TestValue_Values verifies the sequence-or-single view.
func TestValue_Values(t *testing.T) {
	seq := Seq(String("a"), String("b"), String("c"))
	if got := seq.Values(); len(got) != 3 {
		t.Errorf("Values on sequence = %d items, want 3", len(got))
	}

	single := String("only")
	got := single.Values()
	if len(got) != 1 || got[0] != single {
		t.Errorf("Values on scalar = %v, want the value itself", got)
	}

	m := NewMap().Set("k", String("v"))
	if got := m.Values(); len(got) != 1 || got[0] != m {
		t.Errorf("Values on mapping = %v, want the value itself", got)
	}
}

// TestValue_Items verifies Items is sequence-only.
func TestValue_Items(t *testing.T) {
	seq := Seq(String("a"))
	if got := seq.Items(); !reflect.DeepEqual(got, []*Value{seq.items[0]}) {
		t.Errorf("Items() = %v", got)
	}
	if got := String("a").Items(); got != nil {
		t.Errorf("Items on scalar = %v, want nil", got)
	}
}

// TestValue_String verifies the debug rendering stays readable.
func TestValue_String(t *testing.T) {
	v := NewMap().
		Set("A", String("x")).
		Set("B", Seq(Int(1), Int(2))).
		Set("C", nil)

	if got, want := v.String(), `{A:"x" B:["1" "2"] C:<nil>}`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

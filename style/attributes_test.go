package style

import "testing"

func TestAttributesSetUnsetToggle(t *testing.T) {
	attrs := NewAttributes(Bold)

	if !attrs.Has(Bold) {
		t.Error("Expected Bold to be set")
	}

	attrs.Set(Italic)
	if !attrs.Has(Italic) {
		t.Error("Expected Italic to be set")
	}
	if !attrs.Has(Bold) {
		t.Error("Expected Bold to survive setting Italic")
	}

	attrs.Unset(Italic)
	if attrs.Has(Italic) {
		t.Error("Expected Italic to be unset")
	}

	attrs.Toggle(Bold)
	if !attrs.IsEmpty() {
		t.Error("Expected toggling Bold off to empty the set")
	}

	attrs.Toggle(Bold)
	if !attrs.Has(Bold) {
		t.Error("Expected a second toggle to set Bold again")
	}
}

func TestAttributesEquality(t *testing.T) {
	if NewAttributes() != (Attributes{}) {
		t.Error("Expected an empty construction to equal the zero value")
	}
	if NewAttributes(Bold, Dim) != NewAttributes(Dim, Bold) {
		t.Error("Expected construction order not to matter")
	}
	if NewAttributes(Bold, Bold, Italic, Bold) != NewAttributes(Bold, Italic) {
		t.Error("Expected duplicates to collapse into one membership")
	}
}

func TestAttributesSetAlgebra(t *testing.T) {
	ab := NewAttributes(Bold, Italic)
	bc := NewAttributes(Italic, Underlined)

	tests := []struct {
		name string
		got  Attributes
		want Attributes
	}{
		{"union", ab.Union(bc), NewAttributes(Bold, Italic, Underlined)},
		{"intersect", ab.Intersect(bc), NewAttributes(Italic)},
		{"symmetric difference", ab.SymmetricDifference(bc), NewAttributes(Bold, Underlined)},
		{"union with empty", ab.Union(Attributes{}), ab},
		{"intersect with empty", ab.Intersect(Attributes{}), Attributes{}},
		{"symmetric difference with self", ab.SymmetricDifference(ab), Attributes{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected mask %#x, got %#x", tt.want.mask, tt.got.mask)
			}
		})
	}

	// Combinators are pure
	if ab != NewAttributes(Bold, Italic) || bc != NewAttributes(Italic, Underlined) {
		t.Error("Expected operands to be unchanged")
	}
}

func TestAttributesExtend(t *testing.T) {
	attrs := NewAttributes(Bold)
	attrs.Extend(NewAttributes(Italic, Underlined))

	if want := NewAttributes(Bold, Italic, Underlined); attrs != want {
		t.Errorf("Expected mask %#x, got %#x", want.mask, attrs.mask)
	}
}

func collectAttrs(attrs Attributes) []Attribute {
	var out []Attribute
	it := attrs.Iter()
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		out = append(out, a)
	}
	return out
}

func TestAttrIterOrder(t *testing.T) {
	// Insertion order differs from bit order on purpose
	attrs := NewAttributes(Italic, Bold, CrossedOut)

	got := collectAttrs(attrs)
	want := []Attribute{Bold, Italic, CrossedOut}
	if len(got) != len(want) {
		t.Fatalf("Expected %d attributes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v at position %d, got %v", want[i], i, got[i])
		}
	}
}

func TestIterationTracksMutation(t *testing.T) {
	// Fresh iterators see each mutation; ascending bit order throughout
	attrs := NewAttributes(Bold)
	attrs.Set(Italic)

	got := collectAttrs(attrs)
	if len(got) != 2 || got[0] != Bold || got[1] != Italic {
		t.Errorf("Expected [Bold Italic], got %v", got)
	}

	attrs.Unset(Italic)
	got = collectAttrs(attrs)
	if len(got) != 1 || got[0] != Bold {
		t.Errorf("Expected [Bold], got %v", got)
	}

	attrs.Toggle(Bold)
	if !attrs.IsEmpty() {
		t.Error("Expected the set to be empty")
	}
	if got = collectAttrs(attrs); got != nil {
		t.Errorf("Expected no attributes, got %v", got)
	}
}

func TestAttrIterSnapshot(t *testing.T) {
	attrs := NewAttributes(Bold)
	it := attrs.Iter()

	// Mutations after Iter must not show up in the running iteration
	attrs.Set(Italic)

	a, ok := it.Next()
	if !ok || a != Bold {
		t.Fatalf("Expected Bold, got %v (ok=%v)", a, ok)
	}
	if _, ok := it.Next(); ok {
		t.Error("Expected iteration to end after Bold")
	}
}

func TestAttrIterExhausted(t *testing.T) {
	it := NewAttributes(Bold).Iter()
	it.Next()

	if _, ok := it.Next(); ok {
		t.Error("Expected the iterator to be exhausted")
	}
	if _, ok := it.Next(); ok {
		t.Error("Expected the iterator to stay exhausted")
	}
}

func TestAttrIterEmptySet(t *testing.T) {
	it := (Attributes{}).Iter()
	if _, ok := it.Next(); ok {
		t.Error("Expected an empty set to yield nothing")
	}
}

func TestAttrIterHighestBit(t *testing.T) {
	got := collectAttrs(NewAttributes(Reset, NotOverLined))
	want := []Attribute{Reset, NotOverLined}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, got)
	}

	it := NewAttributes(NotOverLined).Iter()
	it.Next()
	if _, ok := it.Next(); ok {
		t.Error("Expected exhaustion past the highest attribute")
	}
}

func TestInvalidAttributePanics(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
	}{
		{"zero value", 0},
		{"two bits", Bold | Italic},
		{"first undefined bit", 1 << 24},
		{"undefined bit", 1 << 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected Set to panic")
				}
			}()
			var s Attributes
			s.Set(tt.attr)
		})
	}
}

func TestHasUndefinedValue(t *testing.T) {
	attrs := NewAttributes(Bold, Italic)

	if attrs.Has(0) {
		t.Error("Expected the zero value not to be a member")
	}
	if attrs.Has(Bold | Italic) {
		t.Error("Expected a multi-bit value not to be a member")
	}
	if attrs.Has(1 << 31) {
		t.Error("Expected an undefined bit not to be a member")
	}
}

func TestAttributeString(t *testing.T) {
	tests := []struct {
		attr Attribute
		want string
	}{
		{Reset, "Reset"},
		{Bold, "Bold"},
		{NoReverse, "NoReverse"},
		{NotOverLined, "NotOverLined"},
	}

	for _, tt := range tests {
		if got := tt.attr.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

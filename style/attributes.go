package style

// Attributes is a set of text attributes packed into a bitmask. The zero
// value is the empty set, and == compares set equality.
type Attributes struct {
	mask uint32
}

// NewAttributes builds a set from the given attributes. Duplicates
// collapse into one membership; an undefined attribute value panics.
func NewAttributes(attrs ...Attribute) Attributes {
	var s Attributes
	for _, a := range attrs {
		s.Set(a)
	}
	return s
}

// Set adds a to the set.
func (s *Attributes) Set(a Attribute) {
	mustValid(a)
	s.mask |= uint32(a)
}

// Unset removes a from the set.
func (s *Attributes) Unset(a Attribute) {
	mustValid(a)
	s.mask &^= uint32(a)
}

// Toggle flips a's membership.
func (s *Attributes) Toggle(a Attribute) {
	mustValid(a)
	s.mask ^= uint32(a)
}

// Extend adds every attribute of other to the set.
func (s *Attributes) Extend(other Attributes) {
	s.mask |= other.mask
}

// Has reports whether a is in the set. Undefined values are never members.
func (s Attributes) Has(a Attribute) bool {
	return a.valid() && s.mask&uint32(a) != 0
}

// IsEmpty reports whether no attribute is set.
func (s Attributes) IsEmpty() bool {
	return s.mask == 0
}

// Union returns the attributes present in either set.
func (s Attributes) Union(other Attributes) Attributes {
	return Attributes{mask: s.mask | other.mask}
}

// Intersect returns the attributes present in both sets.
func (s Attributes) Intersect(other Attributes) Attributes {
	return Attributes{mask: s.mask & other.mask}
}

// SymmetricDifference returns the attributes present in exactly one set.
func (s Attributes) SymmetricDifference(other Attributes) Attributes {
	return Attributes{mask: s.mask ^ other.mask}
}

// Iter returns an iterator over the set in ascending bit order. It walks
// a snapshot: mutating the set afterwards does not change what an
// existing iterator yields.
func (s Attributes) Iter() *AttrIter {
	return &AttrIter{mask: s.mask}
}

// AttrIter yields the attributes of a set one at a time.
type AttrIter struct {
	mask uint32
	bit  int
}

// Next returns the next attribute in ascending bit order. The second
// result is false once the set is exhausted, and stays false.
func (it *AttrIter) Next() (Attribute, bool) {
	for it.bit < attrCount {
		a := Attribute(1) << it.bit
		it.bit++
		if it.mask&uint32(a) != 0 {
			return a, true
		}
	}
	return 0, false
}

package ustring

// Compare lexicographically compares s with o over code units, returning
// -1, 0, or 1. When one string is a prefix of the other, the shorter sorts
// first.
func (s *String[T]) Compare(o *String[T]) int {
	return s.CompareUnits(o.units[:o.length])
}

// CompareUnits lexicographically compares s with a raw code-unit slice.
func (s *String[T]) CompareUnits(units []T) int {
	n := s.length
	if len(units) < n {
		n = len(units)
	}
	for i := 0; i < n; i++ {
		if s.units[i] != units[i] {
			if s.units[i] < units[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case s.length < len(units):
		return -1
	case s.length > len(units):
		return 1
	default:
		return 0
	}
}

// CompareRange lexicographically compares the n units of s starting at pos
// with the given code units. A pos past the length is a *BoundsError; n
// clamps to the remaining length and a negative n takes everything through
// the end.
func (s *String[T]) CompareRange(pos, n int, units []T) (int, error) {
	if err := s.check("CompareRange", pos); err != nil {
		return 0, err
	}
	n = s.limit(pos, n)
	sub := String[T]{units: s.units[pos:], length: n}
	return sub.CompareUnits(units), nil
}

// CompareBytes lexicographically compares s with a UTF-8 byte sequence,
// decoding one character at a time — the byte sequence is never fully
// materialized. The first mismatching code point decides the order; an
// exact prefix relation makes the shorter sequence sort first.
func (s *String[T]) CompareBytes(b []byte) int {
	idx := 0
	for cur := 0; cur < len(b); {
		cp, width := DecodeCharWidth(b[cur:])
		if idx == s.length || s.units[idx] < T(cp) {
			return -1
		}
		if s.units[idx] > T(cp) {
			return 1
		}
		idx++
		cur += width
	}
	if idx < s.length {
		return 1
	}
	return 0
}

// CompareString is like [String.CompareBytes] with a string operand.
func (s *String[T]) CompareString(str string) int {
	idx := 0
	for cur := 0; cur < len(str); {
		cp, width := DecodeCharWidthInString(str[cur:])
		if idx == s.length || s.units[idx] < T(cp) {
			return -1
		}
		if s.units[idx] > T(cp) {
			return 1
		}
		idx++
		cur += width
	}
	if idx < s.length {
		return 1
	}
	return 0
}

// Equal reports whether s and o hold the same code units.
func (s *String[T]) Equal(o *String[T]) bool {
	return s.Compare(o) == 0
}

// EqualString reports whether s decodes equal to the UTF-8 string str.
func (s *String[T]) EqualString(str string) bool {
	return s.CompareString(str) == 0
}

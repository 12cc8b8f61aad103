package ustring

// ByteLen returns the number of bytes the string occupies when serialized
// to UTF-8, computed by summing each unit's encoded width. Nothing is
// serialized.
func (s *String[T]) ByteLen() int {
	total := 0
	for _, u := range s.units[:s.length] {
		total += EncodedWidth(uint32(u))
	}
	return total
}

// Bytes serializes the string to UTF-8. The output is allocated once at
// its exact final size.
func (s *String[T]) Bytes() []byte {
	return Encode(s.units[:s.length])
}

// String serializes the string to a UTF-8 Go string, implementing
// fmt.Stringer.
func (s *String[T]) String() string {
	return string(s.Bytes())
}

// UnitWidth returns the number of UTF-8 bytes the code unit at pos would
// encode to, or 0 when pos is out of range.
func (s *String[T]) UnitWidth(pos int) int {
	if pos < 0 || pos >= s.length {
		return 0
	}
	return EncodedWidth(uint32(s.units[pos]))
}

// BytePosition returns the byte offset the unit at pos would occupy in the
// serialized form, without serializing. A pos at or past the length yields
// NPos.
func (s *String[T]) BytePosition(pos int) int {
	if pos < 0 || pos >= s.length {
		return NPos
	}
	off := 0
	for i := 0; i < pos; i++ {
		off += EncodedWidth(uint32(s.units[i]))
	}
	return off
}

// IndexOfByte returns the code-unit index whose serialized form would
// start at byte offset off, or NPos when off falls inside a unit's
// encoding or at or past the serialized length.
func (s *String[T]) IndexOfByte(off int) int {
	cur := 0
	for pos := 0; pos < s.length; pos++ {
		if cur == off {
			return pos
		}
		if cur > off {
			return NPos
		}
		cur += EncodedWidth(uint32(s.units[pos]))
	}
	return NPos
}

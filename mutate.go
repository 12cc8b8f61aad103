package ustring

// replaceUnits is the engine behind Insert, Erase and Replace: it swaps the
// n1 units at pos for the contents of src. pos and n1 are assumed valid.
//
// Self-referential calls — src drawn from this string's own storage — stay
// correct on every path: equal-size swaps and tail shifts go through copy
// (memmove semantics), reallocation assembles into fresh storage while the
// old array keeps src alive, and an in-place resize stages src before the
// tail moves over it.
func (s *String[T]) replaceUnits(op string, pos, n1 int, src []T) error {
	n2 := len(src)
	if err := s.checkLength(op, n1, n2); err != nil {
		return err
	}
	if n1 == n2 {
		copy(s.units[pos:pos+n2], src)
		return nil
	}

	newSize := s.length + n2 - n1
	if newSize > s.Cap() {
		c := s.Cap() << 1
		if c < newSize {
			c = newSize
		}
		if c > MaxSize {
			c = MaxSize
		}
		next := make([]T, c+1)
		copy(next, s.units[:pos])
		copy(next[pos:], src)
		copy(next[pos+n2:], s.units[pos+n1:s.length])
		s.units = next
		s.setLength(newSize)
		return nil
	}

	if n2 > 0 && pos+n1 < s.length {
		// The tail shift below would clobber a source aliasing the tail.
		staged := make([]T, n2)
		copy(staged, src)
		src = staged
	}
	s.moveRange(pos+n2, pos+n1, s.length-pos-n1)
	copy(s.units[pos:pos+n2], src)
	s.setLength(newSize)
	return nil
}

// replaceFill swaps the n1 units at pos for n2 copies of c. pos and n1 are
// assumed valid.
func (s *String[T]) replaceFill(op string, pos, n1, n2 int, c T) error {
	if err := s.checkLength(op, n1, n2); err != nil {
		return err
	}
	if n1 == n2 {
		s.fillRange(pos, n2, c)
		return nil
	}

	newSize := s.length + n2 - n1
	if newSize > s.Cap() {
		if err := s.grow(op, newSize); err != nil {
			return err
		}
	}
	s.moveRange(pos+n2, pos+n1, s.length-pos-n1)
	s.fillRange(pos, n2, c)
	s.setLength(newSize)
	return nil
}

// fillRange writes n copies of c starting at pos.
func (s *String[T]) fillRange(pos, n int, c T) {
	for i := pos; i < pos+n; i++ {
		s.units[i] = c
	}
}

// assignPrepare sizes storage for an n-unit assignment: growing uses the
// organic policy, while an allocation more than twice the new content
// shrinks to 2n, matching the constructors' headroom.
func (s *String[T]) assignPrepare(op string, n int) error {
	if n > MaxSize {
		return &SizeError{Op: op, Size: n}
	}
	if n > s.Cap() {
		return s.grow(op, n)
	}
	if c := n << 1; c < s.Cap() {
		// Contents are about to be overwritten; fresh storage suffices.
		s.units = make([]T, c+1)
	}
	return nil
}

// Assign replaces the contents with a copy of o's code units.
func (s *String[T]) Assign(o *String[T]) error {
	return s.AssignUnits(o.units[:o.length])
}

// AssignUnits replaces the contents with a copy of the given code units.
func (s *String[T]) AssignUnits(units []T) error {
	if err := s.assignPrepare("Assign", len(units)); err != nil {
		return err
	}
	copy(s.units, units)
	s.setLength(len(units))
	return nil
}

// AssignRepeat replaces the contents with n copies of c.
func (s *String[T]) AssignRepeat(n int, c T) error {
	if err := s.assignPrepare("Assign", n); err != nil {
		return err
	}
	s.fillRange(0, n, c)
	s.setLength(n)
	return nil
}

// AssignString replaces the contents by decoding the UTF-8 string str.
func (s *String[T]) AssignString(str string) error {
	return s.AssignBytes([]byte(str))
}

// AssignBytes replaces the contents by decoding the UTF-8 bytes b. Storage
// is sized to the byte length up front — an upper bound on the decoded
// length — so the decode writes straight into place.
func (s *String[T]) AssignBytes(b []byte) error {
	if err := s.assignPrepare("Assign", len(b)); err != nil {
		return err
	}
	n := 0
	for cur := 0; cur < len(b); {
		cp, width := DecodeCharWidth(b[cur:])
		s.units[n] = T(cp)
		n++
		cur += width
	}
	s.setLength(n)
	return nil
}

// Append appends a copy of o's code units. s.Append(s) is valid.
func (s *String[T]) Append(o *String[T]) error {
	return s.replaceUnits("Append", s.length, 0, o.units[:o.length])
}

// AppendRange appends n of o's code units starting at pos. A pos past o's
// length is a *BoundsError; n clamps to o's remaining length, and a
// negative n takes everything through the end.
func (s *String[T]) AppendRange(o *String[T], pos, n int) error {
	if err := o.check("AppendRange", pos); err != nil {
		return err
	}
	n = o.limit(pos, n)
	return s.replaceUnits("AppendRange", s.length, 0, o.units[pos:pos+n])
}

// AppendUnits appends a copy of the given code units.
func (s *String[T]) AppendUnits(units []T) error {
	return s.replaceUnits("Append", s.length, 0, units)
}

// AppendRepeat appends n copies of c.
func (s *String[T]) AppendRepeat(n int, c T) error {
	return s.replaceFill("Append", s.length, 0, n, c)
}

// AppendString appends the decoded code units of the UTF-8 string str.
func (s *String[T]) AppendString(str string) error {
	return s.AppendBytes([]byte(str))
}

// AppendBytes appends the decoded code units of the UTF-8 bytes b.
func (s *String[T]) AppendBytes(b []byte) error {
	if err := s.checkLength("Append", 0, len(b)); err != nil {
		return err
	}
	if err := s.grow("Append", s.length+len(b)); err != nil {
		return err
	}
	n := s.length
	for cur := 0; cur < len(b); {
		cp, width := DecodeCharWidth(b[cur:])
		s.units[n] = T(cp)
		n++
		cur += width
	}
	s.setLength(n)
	return nil
}

// Insert inserts a copy of o's code units at pos. s.Insert(pos, s) is
// valid. A pos past the length is a *BoundsError.
func (s *String[T]) Insert(pos int, o *String[T]) error {
	if err := s.check("Insert", pos); err != nil {
		return err
	}
	return s.replaceUnits("Insert", pos, 0, o.units[:o.length])
}

// InsertUnits inserts a copy of the given code units at pos.
func (s *String[T]) InsertUnits(pos int, units []T) error {
	if err := s.check("Insert", pos); err != nil {
		return err
	}
	return s.replaceUnits("Insert", pos, 0, units)
}

// InsertRepeat inserts n copies of c at pos.
func (s *String[T]) InsertRepeat(pos, n int, c T) error {
	if err := s.check("Insert", pos); err != nil {
		return err
	}
	return s.replaceFill("Insert", pos, 0, n, c)
}

// InsertString inserts the decoded code units of the UTF-8 string str at
// pos.
func (s *String[T]) InsertString(pos int, str string) error {
	if err := s.check("Insert", pos); err != nil {
		return err
	}
	return s.replaceUnits("Insert", pos, 0, Decode[T]([]byte(str)))
}

// Erase removes n code units starting at pos. A negative n, or one running
// past the end, erases everything through the end. A pos past the length
// is a *BoundsError.
func (s *String[T]) Erase(pos, n int) error {
	if err := s.check("Erase", pos); err != nil {
		return err
	}
	n = s.limit(pos, n)
	if n == 0 {
		return nil
	}
	if tail := s.length - pos - n; tail > 0 {
		s.moveRange(pos, pos+n, tail)
	}
	s.setLength(s.length - n)
	return nil
}

// Replace swaps the n units at pos for a copy of o's code units. o may be
// s itself. A pos past the length is a *BoundsError; n clamps to the
// remaining length.
func (s *String[T]) Replace(pos, n int, o *String[T]) error {
	return s.ReplaceUnits(pos, n, o.units[:o.length])
}

// ReplaceUnits swaps the n units at pos for a copy of the given code
// units, which may alias s's own storage.
func (s *String[T]) ReplaceUnits(pos, n int, units []T) error {
	if err := s.check("Replace", pos); err != nil {
		return err
	}
	return s.replaceUnits("Replace", pos, s.limit(pos, n), units)
}

// ReplaceRepeat swaps the n1 units at pos for n2 copies of c.
func (s *String[T]) ReplaceRepeat(pos, n1, n2 int, c T) error {
	if err := s.check("Replace", pos); err != nil {
		return err
	}
	return s.replaceFill("Replace", pos, s.limit(pos, n1), n2, c)
}

// ReplaceString swaps the n units at pos for the decoded code units of the
// UTF-8 string str.
func (s *String[T]) ReplaceString(pos, n int, str string) error {
	if err := s.check("Replace", pos); err != nil {
		return err
	}
	return s.replaceUnits("Replace", pos, s.limit(pos, n), Decode[T]([]byte(str)))
}

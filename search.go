package ustring

// Find returns the lowest position at or after pos where the code units of
// needle occur in s, or NPos. An empty needle matches at pos itself
// (provided pos is within the string). A negative pos is treated as 0.
func (s *String[T]) Find(needle []T, pos int) int {
	if pos < 0 {
		pos = 0
	}
	n := len(needle)
	if n == 0 {
		if pos <= s.length {
			return pos
		}
		return NPos
	}
	for ; pos+n <= s.length; pos++ {
		if s.units[pos] == needle[0] && unitsEqual(s.units[pos+1:pos+n], needle[1:]) {
			return pos
		}
	}
	return NPos
}

// FindUnit returns the lowest position at or after pos holding the code
// unit c, or NPos.
func (s *String[T]) FindUnit(c T, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for ; pos < s.length; pos++ {
		if s.units[pos] == c {
			return pos
		}
	}
	return NPos
}

// RFind returns the highest position at or before pos where the code units
// of needle occur in s, or NPos. A negative pos means "from the end". An
// empty needle matches at the clamped starting position.
func (s *String[T]) RFind(needle []T, pos int) int {
	n := len(needle)
	if n > s.length {
		return NPos
	}
	if pos < 0 || pos > s.length-n {
		pos = s.length - n
	}
	for ; pos >= 0; pos-- {
		if unitsEqual(s.units[pos:pos+n], needle) {
			return pos
		}
	}
	return NPos
}

// RFindUnit returns the highest position at or before pos holding the code
// unit c, or NPos. A negative pos means "from the end".
func (s *String[T]) RFindUnit(c T, pos int) int {
	if s.length == 0 {
		return NPos
	}
	if pos < 0 || pos > s.length-1 {
		pos = s.length - 1
	}
	for ; pos >= 0; pos-- {
		if s.units[pos] == c {
			return pos
		}
	}
	return NPos
}

// FindFirstOf returns the lowest position at or after pos holding any unit
// of set, or NPos.
func (s *String[T]) FindFirstOf(set []T, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for ; len(set) > 0 && pos < s.length; pos++ {
		if unitInSet(s.units[pos], set) {
			return pos
		}
	}
	return NPos
}

// FindLastOf returns the highest position at or before pos holding any
// unit of set, or NPos. A negative pos means "from the end".
func (s *String[T]) FindLastOf(set []T, pos int) int {
	if s.length == 0 || len(set) == 0 {
		return NPos
	}
	if pos < 0 || pos > s.length-1 {
		pos = s.length - 1
	}
	for ; pos >= 0; pos-- {
		if unitInSet(s.units[pos], set) {
			return pos
		}
	}
	return NPos
}

// FindFirstNotOf returns the lowest position at or after pos holding a
// unit absent from set, or NPos.
func (s *String[T]) FindFirstNotOf(set []T, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for ; pos < s.length; pos++ {
		if !unitInSet(s.units[pos], set) {
			return pos
		}
	}
	return NPos
}

// FindLastNotOf returns the highest position at or before pos holding a
// unit absent from set, or NPos. A negative pos means "from the end".
func (s *String[T]) FindLastNotOf(set []T, pos int) int {
	if s.length == 0 {
		return NPos
	}
	if pos < 0 || pos > s.length-1 {
		pos = s.length - 1
	}
	for ; pos >= 0; pos-- {
		if !unitInSet(s.units[pos], set) {
			return pos
		}
	}
	return NPos
}

func unitsEqual[T CodeUnit](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func unitInSet[T CodeUnit](c T, set []T) bool {
	for _, u := range set {
		if u == c {
			return true
		}
	}
	return false
}

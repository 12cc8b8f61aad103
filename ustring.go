package ustring

// String is a growable string of fixed-width code units. It exclusively
// owns its backing storage; length and capacity are tracked independently,
// and a zero-valued terminator unit always sits one past the length without
// counting toward it, so the unit data can be handed to null-terminated
// consumers unchanged.
//
// The zero value is an empty string with no storage, ready to use.
//
// One code point occupies exactly one code unit: with T = uint16, code
// points above 0xFFFF are truncated on decode (see [CheckUTF16]).
type String[T CodeUnit] struct {
	units  []T // backing storage, len(units) == capacity+1 while allocated
	length int // live code units, excluding the terminator
}

// UTF16String is a String of 16-bit code units.
type UTF16String = String[uint16]

// UTF32String is a String of 32-bit code units.
type UTF32String = String[uint32]

// New returns an empty String with no storage.
func New[T CodeUnit]() *String[T] {
	return &String[T]{}
}

// FromString decodes the UTF-8 string str into a new String.
func FromString[T CodeUnit](str string) *String[T] {
	return FromBytes[T]([]byte(str))
}

// FromBytes decodes the UTF-8 bytes b into a new String. The initial
// capacity is twice the decoded length, matching the growth headroom of the
// other constructors.
func FromBytes[T CodeUnit](b []byte) *String[T] {
	s := &String[T]{}
	s.construct(len(b))
	n := 0
	for cur := 0; cur < len(b); {
		cp, width := DecodeCharWidth(b[cur:])
		s.units[n] = T(cp)
		n++
		cur += width
	}
	s.setLength(n)
	return s
}

// FromUnits copies the given code units into a new String.
func FromUnits[T CodeUnit](units []T) *String[T] {
	s := &String[T]{}
	s.construct(len(units))
	copy(s.units, units)
	s.setLength(len(units))
	return s
}

// Fill returns a new String of n copies of the code unit c.
func Fill[T CodeUnit](n int, c T) *String[T] {
	s := &String[T]{}
	s.construct(n)
	for i := 0; i < n; i++ {
		s.units[i] = c
	}
	s.setLength(n)
	return s
}

// NewUTF16 decodes the UTF-8 string str into 16-bit code units. Code
// points above 0xFFFF are truncated; check [UTF16Compatible] first when
// that matters.
func NewUTF16(str string) *UTF16String {
	return FromString[uint16](str)
}

// NewUTF32 decodes the UTF-8 string str into 32-bit code units.
func NewUTF32(str string) *UTF32String {
	return FromString[uint32](str)
}

// Clone returns a deep copy of s. The copy owns fresh storage; neither
// string observes mutations of the other.
func (s *String[T]) Clone() *String[T] {
	return FromUnits(s.units[:s.length])
}

// Move transfers s's storage to a new String and leaves s empty with zero
// capacity, the single-owner handoff of the design: exactly one String
// refers to the storage afterwards.
func (s *String[T]) Move() *String[T] {
	out := &String[T]{units: s.units, length: s.length}
	s.units = nil
	s.length = 0
	return out
}

// Swap exchanges the contents of s and o without copying code units.
func (s *String[T]) Swap(o *String[T]) {
	s.units, o.units = o.units, s.units
	s.length, o.length = o.length, s.length
}

// Len returns the number of live code units.
func (s *String[T]) Len() int { return s.length }

// Cap returns the number of code units the current allocation can hold.
func (s *String[T]) Cap() int {
	if s.units == nil {
		return 0
	}
	return len(s.units) - 1
}

// Empty reports whether the string has length zero.
func (s *String[T]) Empty() bool { return s.length == 0 }

// Units returns a view of the live code units. The slice aliases the
// string's storage: it is invalidated by any mutation, and writing through
// it bypasses the terminator bookkeeping. Use [String.CopyTo] or
// [String.Clone] for an owned copy.
func (s *String[T]) Units() []T {
	return s.units[:s.length]
}

// At returns the code unit at pos, or a *BoundsError when pos is not below
// the current length.
func (s *String[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= s.length {
		return 0, &BoundsError{Op: "At", Pos: pos, Len: s.length}
	}
	return s.units[pos], nil
}

// Set stores c at pos, or returns a *BoundsError when pos is not below the
// current length.
func (s *String[T]) Set(pos int, c T) error {
	if pos < 0 || pos >= s.length {
		return &BoundsError{Op: "Set", Pos: pos, Len: s.length}
	}
	s.units[pos] = c
	return nil
}

// Unit returns the code unit at pos without bounds checking beyond the
// runtime's own. pos == Len() addresses the terminator.
func (s *String[T]) Unit(pos int) T { return s.units[pos] }

// Front returns the first code unit. It panics on an empty string.
func (s *String[T]) Front() T { return s.units[0] }

// Back returns the last code unit. It panics on an empty string.
func (s *String[T]) Back() T { return s.units[s.length-1] }

// CopyTo copies up to len(dst) code units starting at pos into dst and
// returns the number copied. A pos past the length is a *BoundsError.
func (s *String[T]) CopyTo(dst []T, pos int) (int, error) {
	if pos < 0 || pos > s.length {
		return 0, &BoundsError{Op: "CopyTo", Pos: pos, Len: s.length}
	}
	n := len(dst)
	if n > s.length-pos {
		n = s.length - pos
	}
	copy(dst, s.units[pos:pos+n])
	return n, nil
}

// Substr returns a new String holding n code units starting at pos. A
// negative n takes everything through the end; an n past the end clamps.
// A pos past the length is a *BoundsError.
func (s *String[T]) Substr(pos, n int) (*String[T], error) {
	if pos < 0 || pos > s.length {
		return nil, &BoundsError{Op: "Substr", Pos: pos, Len: s.length}
	}
	n = s.limit(pos, n)
	return FromUnits(s.units[pos : pos+n]), nil
}

// Reserve grows or shrinks the allocation to exactly n code units of
// capacity. Requests below the current length clamp to the length — data is
// never truncated — and requests above [MaxSize] fail with a *SizeError.
// Unlike organic growth, Reserve honors the requested capacity exactly.
func (s *String[T]) Reserve(n int) error {
	if n > MaxSize {
		return &SizeError{Op: "Reserve", Size: n}
	}
	if n < s.length {
		n = s.length
	}
	if n != s.Cap() {
		s.realloc(n)
	}
	return nil
}

// ShrinkToFit drops excess capacity so that Cap() == Len().
func (s *String[T]) ShrinkToFit() {
	if s.Cap() > s.length {
		s.realloc(s.length)
	}
}

// Clear sets the length to zero. Capacity is retained.
func (s *String[T]) Clear() {
	s.setLength(0)
}

// Resize changes the length to n, appending copies of c when growing and
// truncating when shrinking.
func (s *String[T]) Resize(n int, c T) error {
	switch {
	case n > s.length:
		return s.AppendRepeat(n-s.length, c)
	case n < s.length:
		if n < 0 {
			n = 0
		}
		s.setLength(n)
	}
	return nil
}

// PushBack appends a single code unit.
func (s *String[T]) PushBack(c T) error {
	if err := s.grow("PushBack", s.length+1); err != nil {
		return err
	}
	s.units[s.length] = c
	s.setLength(s.length + 1)
	return nil
}

// PopBack removes and returns the last code unit. It reports false on an
// empty string.
func (s *String[T]) PopBack() (T, bool) {
	if s.length == 0 {
		return 0, false
	}
	c := s.units[s.length-1]
	s.setLength(s.length - 1)
	return c, true
}

// construct sizes fresh storage for n units with doubling headroom.
// Constructors route through it so they all share the capacity policy.
func (s *String[T]) construct(n int) {
	c := n << 1
	if c > MaxSize {
		c = MaxSize
		if c < n {
			c = n // representable by definition of the callers
		}
	}
	s.units = make([]T, c+1)
}

// setLength records the new length and restores the terminator invariant.
// Every length change funnels through here.
func (s *String[T]) setLength(n int) {
	s.length = n
	if s.units != nil {
		s.units[n] = 0
	}
}

// realloc moves the live units to storage of capacity n. n must be at
// least the current length.
func (s *String[T]) realloc(n int) {
	next := make([]T, n+1)
	if s.units != nil {
		copy(next, s.units[:s.length])
	}
	s.units = next
}

// grow ensures capacity for n units using the organic-growth policy:
// capacity doubles (capped at MaxSize) unless the request is larger still.
// The buffer is untouched when the request exceeds MaxSize.
func (s *String[T]) grow(op string, n int) error {
	if n > MaxSize {
		return &SizeError{Op: op, Size: n}
	}
	if n <= s.Cap() {
		return nil
	}
	c := s.Cap() << 1
	if c < n {
		c = n
	}
	if c > MaxSize {
		c = MaxSize
	}
	s.realloc(c)
	return nil
}

// checkLength verifies that replacing n1 units with n2 units keeps the
// length within MaxSize, before anything has been mutated.
func (s *String[T]) checkLength(op string, n1, n2 int) error {
	if MaxSize-(s.length-n1) < n2 {
		return &SizeError{Op: op, Size: s.length - n1 + n2}
	}
	return nil
}

// check validates a position argument against the current length; pos may
// equal the length (one past the last unit).
func (s *String[T]) check(op string, pos int) error {
	if pos < 0 || pos > s.length {
		return &BoundsError{Op: op, Pos: pos, Len: s.length}
	}
	return nil
}

// limit clamps a count of units taken at pos: a negative count, or one
// running past the end, becomes everything through the end.
func (s *String[T]) limit(pos, n int) int {
	if n < 0 || n > s.length-pos {
		return s.length - pos
	}
	return n
}

// moveRange shifts n units from src to dst within the buffer. copy has
// memmove semantics, so overlapping ranges shift correctly in either
// direction.
func (s *String[T]) moveRange(dst, src, n int) {
	copy(s.units[dst:dst+n], s.units[src:src+n])
}

package ustring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	s := FromString[uint32]("old contents")
	o := FromString[uint32]("new")
	require.NoError(t, s.Assign(o))
	assert.Equal(t, "new", s.String())
	terminated(t, s)
}

func TestAssignUnits(t *testing.T) {
	s := New[uint32]()
	require.NoError(t, s.AssignUnits([]uint32{0x4E16, 'a'}))
	assert.Equal(t, "世a", s.String())
	terminated(t, s)
}

func TestAssignRepeat(t *testing.T) {
	s := FromString[uint32]("x")
	require.NoError(t, s.AssignRepeat(3, '-'))
	assert.Equal(t, "---", s.String())
	terminated(t, s)
}

func TestAssignString(t *testing.T) {
	s := FromString[uint32]("previous")
	require.NoError(t, s.AssignString("世界杯"))
	require.Equal(t, 3, s.Len())
	assert.Equal(t, uint32(0x754C), s.Unit(1))
	terminated(t, s)
}

// TestAssignShrinksOversizedStorage checks that assigning much smaller
// contents releases the old allocation instead of carrying it forever.
func TestAssignShrinksOversizedStorage(t *testing.T) {
	s := New[uint32]()
	require.NoError(t, s.Reserve(1024))
	require.NoError(t, s.AssignString("ab"))
	assert.Equal(t, "ab", s.String())
	assert.Less(t, s.Cap(), 1024)
	terminated(t, s)
}

func TestAssignSelf(t *testing.T) {
	s := FromString[uint32]("hello")
	require.NoError(t, s.Assign(s))
	assert.Equal(t, "hello", s.String())
}

func TestAppend(t *testing.T) {
	s := FromString[uint32]("世界杯 ")
	o := FromString[uint32]("World Cup!")
	require.NoError(t, s.Append(o))
	assert.Equal(t, "世界杯 World Cup!", s.String())
	assert.Equal(t, 14, s.Len())
	terminated(t, s)
}

func TestAppendSelf(t *testing.T) {
	s := FromString[uint32]("ab")
	require.NoError(t, s.Append(s))
	assert.Equal(t, "abab", s.String())

	// Again, this time forcing a reallocation mid-append.
	s.ShrinkToFit()
	require.NoError(t, s.Append(s))
	assert.Equal(t, "abababab", s.String())
	terminated(t, s)
}

func TestAppendRange(t *testing.T) {
	s := FromString[uint32]("start ")
	o := FromString[uint32]("xxmiddlexx")

	require.NoError(t, s.AppendRange(o, 2, 6))
	assert.Equal(t, "start middle", s.String())

	require.NoError(t, s.AppendRange(o, 8, -1))
	assert.Equal(t, "start middlexx", s.String())

	assert.ErrorIs(t, s.AppendRange(o, 11, 1), ErrBounds)
}

func TestAppendVariants(t *testing.T) {
	s := New[uint16]()
	require.NoError(t, s.AppendString("ab"))
	require.NoError(t, s.AppendUnits([]uint16{'c'}))
	require.NoError(t, s.AppendRepeat(2, 'd'))
	require.NoError(t, s.AppendBytes([]byte("é")))
	assert.Equal(t, "abcddé", s.String())
	assert.Equal(t, 6, s.Len())
	terminated(t, s)
}

func TestInsertString(t *testing.T) {
	s := FromString[uint32]("世界杯 World Cup!")
	require.NoError(t, s.InsertString(4, "Hello "))
	assert.Equal(t, "世界杯 Hello World Cup!", s.String())
	assert.Equal(t, 20, s.Len())
	terminated(t, s)
}

func TestInsert(t *testing.T) {
	s := FromString[uint32]("ad")
	require.NoError(t, s.InsertUnits(1, []uint32{'b', 'c'}))
	assert.Equal(t, "abcd", s.String())

	require.NoError(t, s.InsertRepeat(4, 2, '!'))
	assert.Equal(t, "abcd!!", s.String())

	assert.ErrorIs(t, s.InsertUnits(7, []uint32{'x'}), ErrBounds)
	assert.Equal(t, "abcd!!", s.String())
	terminated(t, s)
}

func TestInsertSelf(t *testing.T) {
	s := FromString[uint32]("abc")
	s.ShrinkToFit()
	require.NoError(t, s.Insert(1, s))
	assert.Equal(t, "aabcbc", s.String())
	terminated(t, s)
}

// TestInsertSelfInPlace inserts the string's own units without triggering
// a reallocation, so the staged-copy path is the one under test.
func TestInsertSelfInPlace(t *testing.T) {
	s := FromString[uint32]("abc")
	require.NoError(t, s.Reserve(16))
	require.NoError(t, s.InsertUnits(1, s.Units()))
	assert.Equal(t, "aabcbc", s.String())
	terminated(t, s)
}

func TestErase(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		n    int
		want string
	}{
		{"middle", 2, 3, "abfgh"},
		{"to end explicit", 3, 5, "abc"},
		{"to end negative", 3, -1, "abc"},
		{"nothing", 3, 0, "abcdefgh"},
		{"all", 0, -1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromString[uint32]("abcdefgh")
			require.NoError(t, s.Erase(tt.pos, tt.n))
			assert.Equal(t, tt.want, s.String())
			terminated(t, s)
		})
	}

	s := FromString[uint32]("abc")
	assert.ErrorIs(t, s.Erase(4, 1), ErrBounds)
	assert.Equal(t, "abc", s.String())
}

func TestInsertEraseInverse(t *testing.T) {
	s := FromString[uint32]("世界杯 World Cup!")
	require.NoError(t, s.InsertString(4, "Hello "))
	require.NoError(t, s.Erase(4, 6))
	assert.Equal(t, "世界杯 World Cup!", s.String())
	terminated(t, s)
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		n    int
		src  string
		want string
	}{
		{"same size", 6, 5, "there", "hello there!"},
		{"grow", 6, 5, "everyone", "hello everyone!"},
		{"shrink", 6, 5, "me", "hello me!"},
		{"clamped count", 6, 100, "all", "hello all"},
		{"empty source erases", 5, 6, "", "hello!"},
		{"at end inserts", 12, 0, " bye", "hello world! bye"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromString[uint32]("hello world!")
			require.NoError(t, s.ReplaceString(tt.pos, tt.n, tt.src))
			assert.Equal(t, tt.want, s.String())
			terminated(t, s)
		})
	}

	s := FromString[uint32]("abc")
	assert.ErrorIs(t, s.ReplaceString(4, 1, "x"), ErrBounds)
}

func TestReplaceRepeat(t *testing.T) {
	s := FromString[uint32]("a--b")
	require.NoError(t, s.ReplaceRepeat(1, 2, 4, '='))
	assert.Equal(t, "a====b", s.String())
	terminated(t, s)
}

// TestReplaceSelfOverlap replaces a range with units drawn from the
// string's own storage, overlapping the destination from both sides.
func TestReplaceSelfOverlap(t *testing.T) {
	// Growing in place: source overlaps the shifted tail.
	s := FromString[uint32]("abcdef")
	require.NoError(t, s.Reserve(32))
	require.NoError(t, s.ReplaceUnits(1, 2, s.Units()[2:6]))
	assert.Equal(t, "acdefdef", s.String())
	terminated(t, s)

	// Shrinking in place: tail shifts left over the source.
	s = FromString[uint32]("abcdef")
	require.NoError(t, s.Reserve(32))
	require.NoError(t, s.ReplaceUnits(0, 4, s.Units()[3:5]))
	assert.Equal(t, "deef", s.String())
	terminated(t, s)

	// Growing through a reallocation: the old array keeps the source alive.
	s = FromString[uint32]("abcdef")
	s.ShrinkToFit()
	require.NoError(t, s.ReplaceUnits(1, 1, s.Units()))
	assert.Equal(t, "aabcdefcdef", s.String())
	terminated(t, s)
}

// TestNoPartialMutationOnSizeError checks that an impossible size request
// leaves the string exactly as it was.
func TestNoPartialMutationOnSizeError(t *testing.T) {
	s := FromString[uint32]("hello")

	err := s.AppendRepeat(MaxSize, 'x')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSize)
	assert.Equal(t, "hello", s.String())

	err = s.ReplaceRepeat(0, 1, MaxSize, 'x')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSize)
	assert.Equal(t, "hello", s.String())

	err = s.InsertRepeat(2, MaxSize, 'x')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSize)
	assert.Equal(t, "hello", s.String())

	var se *SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Insert", se.Op)
	terminated(t, s)
}

func TestMutation16Bit(t *testing.T) {
	s := NewUTF16("héllo")
	require.NoError(t, s.ReplaceString(1, 1, "e"))
	assert.Equal(t, "hello", s.String())
	require.NoError(t, s.InsertString(5, " 世"))
	assert.Equal(t, "hello 世", s.String())
	assert.Equal(t, 7, s.Len())
	terminated(t, s)
}

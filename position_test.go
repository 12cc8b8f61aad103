package ustring

import (
	"testing"
)

func TestByteLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"世界杯", 9},
		{"世界杯 World Cup!", 20},
	}
	for _, tt := range tests {
		s := FromString[uint32](tt.input)
		if got := s.ByteLen(); got != tt.want {
			t.Errorf("ByteLen(%q) = %d, want %d", tt.input, got, tt.want)
		}
		if got := len(s.Bytes()); got != tt.want {
			t.Errorf("len(Bytes(%q)) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{"", "hello", "世界杯 World Cup!", "aß世𝄞"}
	for _, input := range inputs {
		s := FromString[uint32](input)
		if got := s.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestUnitWidth(t *testing.T) {
	s := FromString[uint32]("a世𝄞")
	tests := []struct {
		pos  int
		want int
	}{
		{0, 1},
		{1, 3},
		{2, 4},
		{3, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := s.UnitWidth(tt.pos); got != tt.want {
			t.Errorf("UnitWidth(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestBytePosition(t *testing.T) {
	s := FromString[uint32]("世界杯 W") // serialized offsets: 0, 3, 6, 9, 10
	tests := []struct {
		pos  int
		want int
	}{
		{0, 0},
		{1, 3},
		{2, 6},
		{3, 9},
		{4, 10},
		{5, NPos},
		{-1, NPos},
	}
	for _, tt := range tests {
		if got := s.BytePosition(tt.pos); got != tt.want {
			t.Errorf("BytePosition(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestIndexOfByte(t *testing.T) {
	s := FromString[uint32]("世界杯 W")
	tests := []struct {
		off  int
		want int
	}{
		{0, 0},
		{3, 1},
		{9, 3},
		{10, 4},
		{1, NPos},  // inside 世
		{11, NPos}, // past the serialized length
	}
	for _, tt := range tests {
		if got := s.IndexOfByte(tt.off); got != tt.want {
			t.Errorf("IndexOfByte(%d) = %d, want %d", tt.off, got, tt.want)
		}
	}
}

// TestPositionAgreesWithSerialized cross-checks the computed offsets
// against the actual serialized bytes.
func TestPositionAgreesWithSerialized(t *testing.T) {
	s := FromString[uint32]("aß世𝄞 world 界")
	b := s.Bytes()
	for pos := 0; pos < s.Len(); pos++ {
		off := s.BytePosition(pos)
		if want := IndexToByte(b, pos); off != want {
			t.Errorf("BytePosition(%d) = %d, want %d", pos, off, want)
		}
		if got := s.IndexOfByte(off); got != pos {
			t.Errorf("IndexOfByte(%d) = %d, want %d", off, got, pos)
		}
	}
}

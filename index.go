package ustring

// Decode decodes the UTF-8 bytes of b into a slice of code units, one unit
// per code point. The result is pre-sized to len(b) units of capacity — the
// worst case of one code point per byte — so a single allocation serves the
// whole pass. With a 16-bit unit type, code points above 0xFFFF are
// truncated to their low 16 bits.
func Decode[T CodeUnit](b []byte) []T {
	units := make([]T, 0, len(b))
	for cur := 0; cur < len(b); {
		cp, width := DecodeCharWidth(b[cur:])
		units = append(units, T(cp))
		cur += width
	}
	return units
}

// Encode serializes a slice of code units to UTF-8. The output length is
// computed exactly before encoding, so the returned slice is allocated
// once at its final size.
func Encode[T CodeUnit](units []T) []byte {
	total := 0
	for _, u := range units {
		total += EncodedWidth(uint32(u))
	}
	out := make([]byte, total)
	cur := 0
	for _, u := range units {
		cur += EncodeChar(out[cur:], uint32(u))
	}
	return out
}

// ByteToIndex returns the code-point index of the character whose first
// byte sits at byte offset off in b. Offsets that fall strictly inside a
// multi-byte character, or at or past the end of b, yield NPos: mid-character
// offsets are never valid targets.
func ByteToIndex(b []byte, off int) int {
	idx := 0
	for cur := 0; cur < len(b); idx++ {
		if cur == off {
			return idx
		}
		if cur > off {
			return NPos
		}
		cur += CharWidth(b[cur:])
	}
	return NPos
}

// IndexToByte returns the byte offset of the first byte of the character at
// code-point index idx in b, or NPos when idx is at or past the character
// count.
func IndexToByte(b []byte, idx int) int {
	cur := 0
	for i := 0; cur < len(b); i++ {
		if i == idx {
			return cur
		}
		cur += CharWidth(b[cur:])
	}
	return NPos
}

// ByteIndexMap builds the full byte-offset → code-point-index mapping for b
// in one pass. The result has one entry per byte: slots at character starts
// hold the character's index, continuation-byte slots hold NPos.
func ByteIndexMap(b []byte) []int {
	m := make([]int, len(b))
	idx := 0
	for cur := 0; cur < len(b); idx++ {
		width := CharWidth(b[cur:])
		m[cur] = idx
		for i := 1; i < width; i++ {
			m[cur+i] = NPos
		}
		cur += width
	}
	return m
}

// IndexByteMap builds the full code-point-index → byte-offset mapping for b
// in one pass. The result has one entry per code point.
func IndexByteMap(b []byte) []int {
	m := make([]int, 0, len(b))
	for cur := 0; cur < len(b); {
		m = append(m, cur)
		cur += CharWidth(b[cur:])
	}
	return m
}

// DecodeAndMap decodes b and builds both position maps in a single pass,
// avoiding the three separate scans that [Decode], [IndexByteMap] and
// [ByteIndexMap] would cost. It returns the code units, the index→byte
// map and the byte→index map.
func DecodeAndMap[T CodeUnit](b []byte) (units []T, idxToByte []int, byteToIdx []int) {
	units = make([]T, 0, len(b))
	idxToByte = make([]int, 0, len(b))
	byteToIdx = make([]int, len(b))
	idx := 0
	for cur := 0; cur < len(b); idx++ {
		width := CharWidth(b[cur:])
		units = append(units, T(DecodeChar(b[cur:], width)))
		idxToByte = append(idxToByte, cur)
		byteToIdx[cur] = idx
		for i := 1; i < width; i++ {
			byteToIdx[cur+i] = NPos
		}
		cur += width
	}
	return units, idxToByte, byteToIdx
}

// DecodeAt returns the code point of the character at code-point index idx
// in b, or 0 when idx is at or past the character count.
func DecodeAt[T CodeUnit](b []byte, idx int) T {
	i := 0
	for cur := 0; cur < len(b); i++ {
		width := CharWidth(b[cur:])
		if i == idx {
			return T(DecodeChar(b[cur:], width))
		}
		cur += width
	}
	return 0
}

// CharAt returns the character at code-point index idx of s as a substring,
// or the empty string when idx is at or past the character count.
func CharAt(s string, idx int) string {
	i, cur := 0, 0
	for cur < len(s) {
		width := CharWidthInString(s[cur:])
		if i == idx {
			return s[cur : cur+width]
		}
		cur += width
		i++
	}
	return ""
}

// Substr returns the substring of s starting at code-point index idx and
// spanning n characters. A start index at or past the character count, or
// an n of zero, yields the empty string; an n that runs past the end is
// clamped.
func Substr(s string, idx, n int) string {
	if n == 0 {
		return ""
	}
	i, cur, start := 0, 0, 0
	for cur < len(s) {
		if i == idx {
			start = cur
		}
		if i > idx && i-idx == n {
			return s[start:cur]
		}
		cur += CharWidthInString(s[cur:])
		i++
	}
	if i <= idx {
		return ""
	}
	return s[start:]
}

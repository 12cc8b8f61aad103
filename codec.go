package ustring

// CodeUnit is the set of storage element types a String can hold. One code
// point occupies exactly one code unit; the 16-bit instantiation truncates
// code points above 0xFFFF instead of forming surrogate pairs.
type CodeUnit interface {
	~uint16 | ~uint32
}

// CharWidth returns the number of bytes the first UTF-8 character of b
// occupies: one for the lead plus one per continuation byte that follows
// (bytes whose top two bits are 10). The scan never runs past len(b) and
// never fails: a malformed lead simply takes whatever continuation bytes
// trail it, and a lone stray byte decodes as a literal one-byte code
// point. An empty slice yields 0.
func CharWidth(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	width := 1
	for width < len(b) && b[width]&0xC0 == 0x80 {
		width++
	}
	return width
}

// CharWidthInString is like [CharWidth] but its input is a string.
func CharWidthInString(s string) int {
	if len(s) == 0 {
		return 0
	}
	width := 1
	for width < len(s) && s[width]&0xC0 == 0x80 {
		width++
	}
	return width
}

// LeadWidth classifies the byte width of a UTF-8 character directly from
// its lead byte's high-bit pattern, without touching the continuation
// bytes. remaining is the number of bytes left in the buffer including the
// lead byte; widths that would not fit are rejected. A malformed lead
// yields 1, the same fallback as [CharWidth].
//
// LeadWidth and CharWidth agree for well-formed input; LeadWidth is the
// faster of the two because it reads a single byte.
func LeadWidth(lead byte, remaining int) int {
	switch {
	case remaining >= 7 && lead == 0xFE: // 11111110
		return 7
	case remaining >= 6 && lead&0xFE == 0xFC: // 1111110x
		return 6
	case remaining >= 5 && lead&0xFC == 0xF8: // 111110xx
		return 5
	case remaining >= 4 && lead&0xF8 == 0xF0: // 11110xxx
		return 4
	case remaining >= 3 && lead&0xF0 == 0xE0: // 1110xxxx
		return 3
	case remaining >= 2 && lead&0xE0 == 0xC0: // 110xxxxx
		return 2
	default:
		return 1
	}
}

// EncodedWidth returns the number of bytes cp occupies when encoded as
// UTF-8, using the extended ladder that allows sequences of up to 7 bytes.
// Values above 0x7FFFFFFF (only reachable through the 32-bit unit type's
// full range) report 7.
func EncodedWidth(cp uint32) int {
	switch {
	case cp <= 0x7F:
		return 1
	case cp <= 0x7FF:
		return 2
	case cp <= 0xFFFF:
		return 3
	case cp <= 0x1FFFFF:
		return 4
	case cp <= 0x3FFFFFF:
		return 5
	case cp <= 0x7FFFFFFF:
		return 6
	default:
		return 7
	}
}

// DecodeChar decodes the first character of b to a code point, given the
// byte width already determined by [CharWidth] or [LeadWidth]. It performs
// no bounds checking of its own: the caller supplies a width that fits in
// b. Malformed continuation bytes contribute their low six bits as if they
// were valid; the result is best-effort, never an error.
func DecodeChar(b []byte, width int) uint32 {
	cp := uint32(b[0])
	if width > 1 {
		cp &= 0x7F >> uint(width)
		for i := 1; i < width; i++ {
			cp = cp<<6 | uint32(b[i]&0x3F)
		}
	}
	return cp
}

// DecodeCharWidth decodes the first character of b and reports the number
// of bytes it consumed. It is the fused form of [CharWidth] followed by
// [DecodeChar]. An empty slice yields (0, 0).
func DecodeCharWidth(b []byte) (uint32, int) {
	width := CharWidth(b)
	if width == 0 {
		return 0, 0
	}
	return DecodeChar(b, width), width
}

// DecodeCharWidthInString is like [DecodeCharWidth] but its input is a
// string.
func DecodeCharWidthInString(s string) (uint32, int) {
	width := CharWidthInString(s)
	if width == 0 {
		return 0, 0
	}
	cp := uint32(s[0])
	if width > 1 {
		cp &= 0x7F >> uint(width)
		for i := 1; i < width; i++ {
			cp = cp<<6 | uint32(s[i]&0x3F)
		}
	}
	return cp, width
}

// EncodeChar writes the UTF-8 encoding of cp into dst, which must have room
// for [EncodedWidth](cp) bytes, and returns the number of bytes written.
// Bytes are emitted most-significant-first: the lead byte carries the
// width-marker high bits plus the top payload bits, each continuation byte
// carries six payload bits under a 10 prefix.
func EncodeChar(dst []byte, cp uint32) int {
	width := EncodedWidth(cp)
	if width == 1 {
		dst[0] = byte(cp)
		return 1
	}
	for i := width - 1; i > 0; i-- {
		dst[i] = 0x80 | byte(cp&0x3F)
		cp >>= 6
	}
	dst[0] = byte(uint32(0xFF00)>>uint(width)) | byte(cp)
	return width
}

// AppendChar appends the UTF-8 encoding of cp to dst and returns the
// extended slice, in the manner of [unicode/utf8.AppendRune].
func AppendChar(dst []byte, cp uint32) []byte {
	var buf [7]byte
	n := EncodeChar(buf[:], cp)
	return append(dst, buf[:n]...)
}

// CharCount returns the number of code points in b.
func CharCount(b []byte) int {
	count := 0
	for cur := 0; cur < len(b); count++ {
		cur += CharWidth(b[cur:])
	}
	return count
}

// CheckUTF16 scans b for the first character that cannot be represented as
// a single UTF-16 code unit — any character occupying more than 3 UTF-8
// bytes, which would require a surrogate pair. It returns the byte offset
// of that character, or len(b) when every character fits.
func CheckUTF16(b []byte) int {
	for cur := 0; cur < len(b); {
		width := CharWidth(b[cur:])
		if width > 3 {
			return cur
		}
		cur += width
	}
	return len(b)
}

// UTF16Compatible reports whether every character of b fits in a single
// UTF-16 code unit. It is shorthand for CheckUTF16(b) == len(b).
func UTF16Compatible(b []byte) bool {
	return CheckUTF16(b) == len(b)
}

// IsChinese reports whether the first character of s is a Chinese
// character. The narrow test covers U+4E00..U+9FA5; the broad test adds
// the CJK extension blocks A through F and the compatibility ideograph
// ranges.
func IsChinese(s string, broad bool) bool {
	cp, _ := DecodeCharWidthInString(s)
	if broad {
		return (cp >= 0x4E00 && cp <= 0x9FFF) || (cp >= 0x3400 && cp <= 0x4DBF) ||
			(cp >= 0x20000 && cp <= 0x2A6DF) || (cp >= 0x2A700 && cp <= 0x2B73F) ||
			(cp >= 0x2B740 && cp <= 0x2B81F) || (cp >= 0x2B820 && cp <= 0x2CEAF) ||
			(cp >= 0xF900 && cp <= 0xFAFF) || (cp >= 0x2F800 && cp <= 0x2FA1F)
	}
	return cp >= 0x4E00 && cp <= 0x9FA5
}

package ustring

import "strings"

// Byte-level string helpers in the Python style. These operate purely on
// byte sequences — no Unicode awareness beyond what the caller brings —
// and follow Python's conventions rather than the strings package's:
// whitespace splits drop empty fields, maxsplit bounds the number of
// separators consumed, and strip cutsets default to whitespace.

// Split splits s around sep, from front to back, dropping empty fields.
// An empty sep splits around runs of ASCII whitespace. maxsplit bounds the
// number of fields split off; the unsplit remainder becomes the final
// field. A negative maxsplit means no bound.
func Split(s, sep string, maxsplit int) []string {
	if maxsplit < 0 {
		maxsplit = len(s) + 1
	}
	if sep == "" {
		return splitWhitespace(s, maxsplit)
	}
	var result []string
	start := 0
	for end := strings.Index(s, sep); end != -1; end = indexFrom(s, sep, start) {
		if start < end {
			if maxsplit <= 0 {
				break
			}
			maxsplit--
			result = append(result, s[start:end])
		}
		start = end + len(sep)
	}
	if start < len(s) {
		result = append(result, s[start:])
	}
	return result
}

// RSplit is like [Split] but splits from back to front, so maxsplit bounds
// the number of fields taken from the end. The result is still in
// front-to-back order. With a negative maxsplit it is identical to Split.
func RSplit(s, sep string, maxsplit int) []string {
	if maxsplit < 0 {
		return Split(s, sep, maxsplit)
	}
	if sep == "" {
		return rsplitWhitespace(s, maxsplit)
	}
	var result []string
	end := len(s)
	for start := lastIndexBefore(s, sep, end); start != -1; start = lastIndexBefore(s, sep, end) {
		if start+len(sep) < end {
			if maxsplit <= 0 {
				break
			}
			maxsplit--
			result = append(result, s[start+len(sep):end])
		}
		end = start
	}
	if end > 0 {
		result = append(result, s[:end])
	}
	reverse(result)
	return result
}

// SplitLines splits s at line boundaries (\n, \r, or \r\n). Line breaks
// are excluded from the fields unless keepends is true.
func SplitLines(s string, keepends bool) []string {
	var result []string
	i, j := 0, 0
	for i < len(s) {
		for i < len(s) && s[i] != '\n' && s[i] != '\r' {
			i++
		}
		end := i
		if i < len(s) {
			if i+1 < len(s) && s[i] == '\r' && s[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			if keepends {
				end = i
			}
		}
		result = append(result, s[j:end])
		j = i
	}
	return result
}

// Strip removes leading and trailing characters contained in cutset. An
// empty cutset removes ASCII whitespace.
func Strip(s, cutset string) string { return doStrip(s, cutset, true, true) }

// LStrip removes leading characters contained in cutset. An empty cutset
// removes ASCII whitespace.
func LStrip(s, cutset string) string { return doStrip(s, cutset, true, false) }

// RStrip removes trailing characters contained in cutset. An empty cutset
// removes ASCII whitespace.
func RStrip(s, cutset string) string { return doStrip(s, cutset, false, true) }

// Join concatenates the elements of parts with sep between them. The
// result is built in a single allocation.
func Join(parts []string, sep string) string {
	if len(parts) == 0 {
		return ""
	}
	n := len(parts[0])
	for _, p := range parts[1:] {
		n += len(sep) + len(p)
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(sep)
		b.WriteString(p)
	}
	return b.String()
}

// StartsWith reports whether s begins with prefix at byte offset start.
func StartsWith(s, prefix string, start int) bool {
	return start >= 0 && start+len(prefix) <= len(s) && s[start:start+len(prefix)] == prefix
}

// EndsWith reports whether s ends with suffix, considering only the part
// of s at or after byte offset start.
func EndsWith(s, suffix string, start int) bool {
	if start < 0 || len(s) < start+len(suffix) {
		return false
	}
	return s[len(s)-len(suffix):] == suffix
}

// Count returns the number of non-overlapping occurrences of substr in s.
// An empty substr counts zero.
func Count(s, substr string) int {
	if substr == "" {
		return 0
	}
	result := 0
	for cur := strings.Index(s, substr); cur != -1; cur = indexFrom(s, substr, cur+len(substr)) {
		result++
	}
	return result
}

// Replace returns s with occurrences of old replaced by new. A
// non-negative count bounds the number of replacements; an empty old
// returns s unchanged.
func Replace(s, old, new string, count int) string {
	if old == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	sofar, start := 0, 0
	for end := strings.Index(s, old); end != -1; end = indexFrom(s, old, start) {
		if count >= 0 && sofar >= count {
			break
		}
		b.WriteString(s[start:end])
		b.WriteString(new)
		start = end + len(old)
		sofar++
	}
	b.WriteString(s[start:])
	return b.String()
}

// Repeat returns s concatenated n times. A non-positive n yields the
// empty string.
func Repeat(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(n * len(s))
	for i := 0; i < n; i++ {
		b.WriteString(s)
	}
	return b.String()
}

// IsAlnum reports whether s is nonempty and all ASCII alphanumeric.
func IsAlnum(s string) bool {
	return classify(s, func(c byte) bool {
		return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
	})
}

// IsAlpha reports whether s is nonempty and all ASCII alphabetic.
func IsAlpha(s string) bool {
	return classify(s, func(c byte) bool {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
	})
}

// IsDigit reports whether s is nonempty and all ASCII digits.
func IsDigit(s string) bool {
	return classify(s, func(c byte) bool { return c >= '0' && c <= '9' })
}

// IsLower reports whether s is nonempty and all ASCII lowercase letters.
func IsLower(s string) bool {
	return classify(s, func(c byte) bool { return c >= 'a' && c <= 'z' })
}

// IsUpper reports whether s is nonempty and all ASCII uppercase letters.
func IsUpper(s string) bool {
	return classify(s, func(c byte) bool { return c >= 'A' && c <= 'Z' })
}

// IsSpace reports whether s is nonempty and all ASCII whitespace.
func IsSpace(s string) bool {
	return classify(s, isSpaceByte)
}

// ToLower returns s with ASCII uppercase letters lowered. Multi-byte
// characters pass through untouched.
func ToLower(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}

// ToUpper returns s with ASCII lowercase letters raised. Multi-byte
// characters pass through untouched.
func ToUpper(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}

func splitWhitespace(s string, maxsplit int) []string {
	var result []string
	i, j := 0, 0
	for i < len(s) {
		for i < len(s) && isSpaceByte(s[i]) {
			i++
		}
		j = i
		for i < len(s) && !isSpaceByte(s[i]) {
			i++
		}
		if j < i {
			if maxsplit <= 0 {
				break
			}
			maxsplit--
			result = append(result, s[j:i])
			j = i
		}
	}
	if j < len(s) {
		result = append(result, s[j:])
	}
	return result
}

func rsplitWhitespace(s string, maxsplit int) []string {
	var result []string
	i, j := len(s), len(s)
	for i > 0 {
		for i > 0 && isSpaceByte(s[i-1]) {
			i--
		}
		j = i
		for i > 0 && !isSpaceByte(s[i-1]) {
			i--
		}
		if i < j {
			if maxsplit <= 0 {
				break
			}
			maxsplit--
			result = append(result, s[i:j])
			j = i
		}
	}
	if j > 0 {
		result = append(result, s[:j])
	}
	reverse(result)
	return result
}

func doStrip(s, cutset string, left, right bool) string {
	in := func(c byte) bool { return isSpaceByte(c) }
	if cutset != "" {
		in = func(c byte) bool { return strings.IndexByte(cutset, c) >= 0 }
	}
	i, j := 0, len(s)
	if left {
		for i < len(s) && in(s[i]) {
			i++
		}
	}
	if right {
		for j > i && in(s[j-1]) {
			j--
		}
	}
	return s[i:j]
}

func classify(s string, pred func(byte) bool) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// indexFrom is strings.Index starting the search at byte offset from.
func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}
	return from + i
}

// lastIndexBefore returns the largest index i < end such that substr
// begins at i, or -1.
func lastIndexBefore(s, substr string, end int) int {
	hi := end - 1 + len(substr)
	if hi < 0 {
		return -1
	}
	if hi > len(s) {
		hi = len(s)
	}
	return strings.LastIndex(s[:hi], substr)
}

func reverse(parts []string) {
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
}

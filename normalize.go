package brcode

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeASCII transliterates s to printable ASCII: letters are decomposed
// and stripped of their combining marks ("São Paulo" -> "Sao Paulo"), and any
// rune still outside 0x20-0x7E is dropped.
func NormalizeASCII(s string) string {
	if isPrintableASCII(s) {
		return s
	}
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r < 0x20 || r > 0x7E })),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return stripNonASCII(s)
	}
	return out
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

func stripNonASCII(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x20 && s[i] <= 0x7E {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

// truncate keeps at most n bytes of an ASCII string.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

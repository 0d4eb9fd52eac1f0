package classifier

import "strings"

// Normalize lowercases s, collapses every run of white space to a single
// space and trims both ends. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.FieldsFunc(strings.ToLower(s), isSpace), " ")
}

// isSpace reports the white space set of ECMAScript's \s: Unicode Zs, the
// ASCII controls \t \n \v \f \r, the line and paragraph separators and
// U+FEFF. U+0085 is not included.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// ContainsAny reports the first keyword, in declared order, that occurs as a
// substring of text. Matching is plain containment, not whole-word, so "wifi"
// is found inside "mywifi". text is expected to be normalized already.
func ContainsAny(text string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return k, true
		}
	}
	return "", false
}

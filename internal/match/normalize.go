package match

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Haystack is one entry's text prepared for a particular atom.
// Folded and Original always have the same length.
type Haystack struct {
	Folded   []rune
	Original []rune
}

// foldRune applies the atom's case and normalization rules to a haystack rune
func foldRune(r rune, ignoreCase, normalize bool) rune {
	if normalize {
		r = stripDiacritic(r)
	}
	if ignoreCase {
		r = unicode.ToLower(r)
	}
	return r
}

// stripDiacritic maps a precomposed character to its base character (é -> e)
func stripDiacritic(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	dec := norm.NFD.PropertiesString(string(r)).Decomposition()
	if len(dec) == 0 {
		return r
	}
	base, _ := utf8.DecodeRune(dec)
	if base == utf8.RuneError {
		return r
	}
	return base
}

func fold(original []rune, ignoreCase, normalize bool) []rune {
	if !ignoreCase && !normalize {
		return original
	}
	folded := make([]rune, len(original))
	for i, r := range original {
		folded[i] = foldRune(r, ignoreCase, normalize)
	}
	return folded
}

func isASCII(rs []rune) bool {
	for _, r := range rs {
		if r >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func hasUpper(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

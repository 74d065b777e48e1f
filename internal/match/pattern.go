package match

import (
	"unicode"
)

// AtomKind selects how an atom is matched against a haystack
type AtomKind int

const (
	// AtomFuzzy matches the needle as a subsequence
	AtomFuzzy AtomKind = iota
	// AtomSubstring matches the needle as a contiguous run ('foo)
	AtomSubstring
	// AtomPrefix anchors the needle at the start (^foo)
	AtomPrefix
	// AtomPostfix anchors the needle at the end (foo$)
	AtomPostfix
	// AtomExact requires the whole text to equal the needle (^foo$)
	AtomExact
)

// Atom is one whitespace-separated term of a query
type Atom struct {
	Needle     []rune
	Kind       AtomKind
	Negate     bool
	IgnoreCase bool
	Normalize  bool
}

// Pattern is a parsed query. An entry matches when every positive atom
// matches and no negated atom does.
type Pattern struct {
	Atoms []Atom
}

// Empty reports whether the pattern has no atoms (blank query)
func (p Pattern) Empty() bool {
	return len(p.Atoms) == 0
}

// Parse splits query into atoms. Unescaped whitespace separates atoms and a
// backslash makes the next character literal. Leading ! negates an atom,
// leading ^ anchors at the start, leading ' asks for a substring and a
// trailing $ anchors at the end. A metacharacter on its own is literal.
func Parse(query string, caseMatching CaseMatching) Pattern {
	var p Pattern
	for _, tok := range tokenize(query) {
		p.Atoms = append(p.Atoms, newAtom(tok, caseMatching))
	}
	return p
}

type token struct {
	runes   []rune
	escaped []bool
}

func tokenize(query string) []token {
	var (
		toks []token
		cur  token
	)
	flush := func() {
		if len(cur.runes) > 0 {
			toks = append(toks, cur)
		}
		cur = token{}
	}

	rs := []rune(query)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '\\' && i+1 < len(rs):
			i++
			cur.runes = append(cur.runes, rs[i])
			cur.escaped = append(cur.escaped, true)
		case unicode.IsSpace(r):
			flush()
		default:
			cur.runes = append(cur.runes, r)
			cur.escaped = append(cur.escaped, false)
		}
	}
	flush()
	return toks
}

func newAtom(tok token, caseMatching CaseMatching) Atom {
	i, j := 0, len(tok.runes)
	meta := func(k int, r rune) bool {
		return j-i > 1 && tok.runes[k] == r && !tok.escaped[k]
	}

	var negate, prefix, substring, postfix bool
	if meta(i, '!') {
		negate = true
		i++
	}
	if meta(i, '^') {
		prefix = true
		i++
	} else if meta(i, '\'') {
		substring = true
		i++
	}
	if meta(j-1, '$') {
		postfix = true
		j--
	}

	kind := AtomFuzzy
	switch {
	case prefix && postfix:
		kind = AtomExact
	case prefix:
		kind = AtomPrefix
	case postfix:
		kind = AtomPostfix
	case substring, negate:
		kind = AtomSubstring
	}

	needle := append([]rune(nil), tok.runes[i:j]...)
	ignoreCase := false
	switch caseMatching {
	case CaseIgnore:
		ignoreCase = true
	case CaseSmart:
		ignoreCase = !hasUpper(needle)
	}
	normalize := isASCII(needle)
	if ignoreCase {
		for k, r := range needle {
			needle[k] = unicode.ToLower(r)
		}
	}

	return Atom{
		Needle:     needle,
		Kind:       kind,
		Negate:     negate,
		IgnoreCase: ignoreCase,
		Normalize:  normalize,
	}
}

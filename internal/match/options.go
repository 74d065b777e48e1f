package match

import (
	"fmt"
	"strings"
)

// CaseMatching controls how letter case is treated when matching
type CaseMatching int

const (
	// CaseSmart is case-sensitive only when the needle contains an uppercase letter
	CaseSmart CaseMatching = iota
	// CaseRespect is always case-sensitive
	CaseRespect
	// CaseIgnore is always case-insensitive
	CaseIgnore
)

func (c CaseMatching) String() string {
	switch c {
	case CaseRespect:
		return "respect"
	case CaseIgnore:
		return "ignore"
	default:
		return "smart"
	}
}

// ParseCaseMatching parses "respect", "ignore" or "smart"
func ParseCaseMatching(s string) (CaseMatching, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "respect":
		return CaseRespect, nil
	case "ignore":
		return CaseIgnore, nil
	case "smart":
		return CaseSmart, nil
	default:
		return CaseSmart, fmt.Errorf("unrecognized case matching %q: expected respect, ignore or smart", s)
	}
}

// Options are the matching toggles that affect ranking
type Options struct {
	CaseMatching CaseMatching
	MatchPaths   bool
}

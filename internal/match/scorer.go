package match

import (
	"fmt"
	"strings"
	"unicode"
)

// Scorer is the fuzzy (subsequence) matching primitive.
// needle and haystack.Folded have already been case-folded and normalized
// consistently, so runes can be compared directly. Positions are rune
// indices into the haystack, ascending.
type Scorer interface {
	Fuzzy(needle []rune, haystack Haystack, matchPaths bool) (score int, positions []int, ok bool)
}

const (
	scoreMatch          = 16
	penaltyGapStart     = 3
	penaltyGapExtension = 1

	bonusBoundary          = scoreMatch / 2
	bonusBoundaryWhite     = bonusBoundary + 2
	bonusBoundaryDelimiter = bonusBoundary + 1
	bonusCamel             = bonusBoundary - penaltyGapStart
	bonusConsecutive       = penaltyGapStart + penaltyGapExtension
	bonusFirstCharFactor   = 2
	bonusFinalSegment      = 4
)

// Scorer names accepted by ScorerByName
const (
	ScorerNative = "native"
	ScorerSahilm = "sahilm"
)

// ScorerByName returns the scorer registered under name
func ScorerByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ScorerNative, "":
		return NativeScorer{}, nil
	case ScorerSahilm:
		return SahilmScorer{}, nil
	default:
		return nil, fmt.Errorf("unrecognized scorer %q: expected %s or %s", name, ScorerNative, ScorerSahilm)
	}
}

// NativeScorer finds the earliest-ending occurrence of the needle as a
// subsequence, then tightens its start by scanning backwards, and scores the
// resulting positions.
type NativeScorer struct{}

// Fuzzy implements Scorer
func (NativeScorer) Fuzzy(needle []rune, hay Haystack, matchPaths bool) (int, []int, bool) {
	text := hay.Folded
	if len(needle) == 0 || len(needle) > len(text) {
		return 0, nil, false
	}

	// Forward pass: where does the first complete occurrence end?
	k, end := 0, -1
	for i, r := range text {
		if r == needle[k] {
			k++
			if k == len(needle) {
				end = i
				break
			}
		}
	}
	if end < 0 {
		return 0, nil, false
	}

	// Backward pass from the end picks the tightest window.
	positions := make([]int, len(needle))
	k = len(needle) - 1
	for i := end; i >= 0 && k >= 0; i-- {
		if text[i] == needle[k] {
			positions[k] = i
			k--
		}
	}

	return ScorePositions(hay.Original, positions, matchPaths), positions, true
}

// ScorePositions scores matched rune positions in text. Matches at word
// and path boundaries, consecutive runs and the first character weigh more;
// gaps between matches cost points. With matchPaths, matches inside the
// final path segment earn an extra bonus.
func ScorePositions(text []rune, positions []int, matchPaths bool) int {
	if len(positions) == 0 {
		return 0
	}

	lastSep := -1
	if matchPaths {
		lastSep = lastSeparator(text)
	}

	score := 0
	prev := -1
	chunkBonus := 0
	for k, p := range positions {
		b := bonusAt(text, p, matchPaths)
		if k > 0 && p == prev+1 {
			if b >= bonusBoundary && b > chunkBonus {
				chunkBonus = b
			}
			b = max(b, chunkBonus, bonusConsecutive)
		} else {
			if k > 0 {
				gap := p - prev - 1
				score -= penaltyGapStart + (gap-1)*penaltyGapExtension
			}
			chunkBonus = b
		}

		if k == 0 {
			score += scoreMatch + b*bonusFirstCharFactor
		} else {
			score += scoreMatch + b
		}
		if matchPaths && p > lastSep {
			score += bonusFinalSegment
		}
		prev = p
	}
	return score
}

type charClass int

const (
	classWhite charClass = iota
	classNonWord
	classDelimiter
	classLower
	classUpper
	classLetter
	classNumber
)

func classOf(r rune, matchPaths bool) charClass {
	switch {
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classNumber
	case unicode.IsLetter(r):
		return classLetter
	case unicode.IsSpace(r):
		return classWhite
	case isDelimiter(r, matchPaths):
		return classDelimiter
	default:
		return classNonWord
	}
}

func isDelimiter(r rune, matchPaths bool) bool {
	if matchPaths {
		return r == '/' || r == '\\'
	}
	return strings.ContainsRune("/,:;|", r)
}

func bonusAt(text []rune, idx int, matchPaths bool) int {
	cur := classOf(text[idx], matchPaths)
	if idx == 0 {
		if cur > classDelimiter {
			return bonusBoundaryWhite
		}
		return 0
	}
	prev := classOf(text[idx-1], matchPaths)
	if cur <= classDelimiter {
		return 0
	}
	switch prev {
	case classWhite:
		return bonusBoundaryWhite
	case classDelimiter:
		return bonusBoundaryDelimiter
	case classNonWord:
		return bonusBoundary
	}
	if (prev == classLower && cur == classUpper) || (prev != classNumber && cur == classNumber) {
		return bonusCamel
	}
	return 0
}

func lastSeparator(text []rune) int {
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '/' || text[i] == '\\' {
			return i
		}
	}
	return -1
}

// finalSegmentBonus is the path bonus for scorers that do not apply it themselves
func finalSegmentBonus(text []rune, positions []int) int {
	lastSep := lastSeparator(text)
	bonus := 0
	for _, p := range positions {
		if p > lastSep {
			bonus += bonusFinalSegment
		}
	}
	return bonus
}

package match

import (
	"github.com/sahilm/fuzzy"
)

// SahilmScorer delegates subsequence matching to github.com/sahilm/fuzzy,
// which favours matches after separators and camelCase humps. That library
// always folds case and picks its own alignment. When that alignment is not
// exact for a case-sensitive atom, the native scan decides the match.
type SahilmScorer struct{}

// Fuzzy implements Scorer
func (SahilmScorer) Fuzzy(needle []rune, hay Haystack, matchPaths bool) (int, []int, bool) {
	if len(needle) == 0 {
		return 0, nil, false
	}
	text := string(hay.Folded)
	matches := fuzzy.Find(string(needle), []string{text})
	if len(matches) == 0 || len(matches[0].MatchedIndexes) != len(needle) {
		return 0, nil, false
	}
	m := matches[0]

	positions := byteToRuneIndexes(text, m.MatchedIndexes)
	for k, p := range positions {
		if p >= len(hay.Folded) || hay.Folded[p] != needle[k] {
			return NativeScorer{}.Fuzzy(needle, hay, matchPaths)
		}
	}

	score := m.Score
	if matchPaths {
		score += finalSegmentBonus(hay.Original, positions)
	}
	return score, positions, true
}

// byteToRuneIndexes converts ascending byte offsets into rune indices
func byteToRuneIndexes(s string, offsets []int) []int {
	out := make([]int, 0, len(offsets))
	next := 0
	runeIdx := 0
	for byteIdx := range s {
		if next == len(offsets) {
			break
		}
		if byteIdx == offsets[next] {
			out = append(out, runeIdx)
			next++
		}
		runeIdx++
	}
	return out
}

package match

import (
	"slices"
)

// MatchPattern matches text against every atom of p. The score is the sum
// of the positive atoms' scores and positions are their sorted union.
func MatchPattern(p Pattern, text string, scorer Scorer, matchPaths bool) (int, []int, bool) {
	original := []rune(text)
	var (
		total     int
		positions []int
	)
	for _, atom := range p.Atoms {
		hay := Haystack{
			Folded:   fold(original, atom.IgnoreCase, atom.Normalize),
			Original: original,
		}
		score, pos, ok := matchAtom(atom, hay, scorer, matchPaths)
		if atom.Negate {
			if ok {
				return 0, nil, false
			}
			continue
		}
		if !ok {
			return 0, nil, false
		}
		total += score
		positions = append(positions, pos...)
	}

	if len(positions) > 0 {
		slices.Sort(positions)
		positions = slices.Compact(positions)
	}
	return total, positions, true
}

func matchAtom(atom Atom, hay Haystack, scorer Scorer, matchPaths bool) (int, []int, bool) {
	needle, text := atom.Needle, hay.Folded
	n := len(needle)
	if n == 0 || n > len(text) {
		return 0, nil, false
	}

	switch atom.Kind {
	case AtomFuzzy:
		return scorer.Fuzzy(needle, hay, matchPaths)
	case AtomPrefix:
		if !slices.Equal(text[:n], needle) {
			return 0, nil, false
		}
		return contiguous(hay.Original, 0, n, matchPaths)
	case AtomPostfix:
		if !slices.Equal(text[len(text)-n:], needle) {
			return 0, nil, false
		}
		return contiguous(hay.Original, len(text)-n, n, matchPaths)
	case AtomExact:
		if !slices.Equal(text, needle) {
			return 0, nil, false
		}
		return contiguous(hay.Original, 0, n, matchPaths)
	default:
		best, bestPos, found := 0, []int(nil), false
		for start := 0; start+n <= len(text); start++ {
			if !slices.Equal(text[start:start+n], needle) {
				continue
			}
			score, pos, _ := contiguous(hay.Original, start, n, matchPaths)
			if !found || score > best {
				best, bestPos, found = score, pos, true
			}
		}
		return best, bestPos, found
	}
}

func contiguous(original []rune, start, n int, matchPaths bool) (int, []int, bool) {
	positions := make([]int, n)
	for i := range positions {
		positions[i] = start + i
	}
	return ScorePositions(original, positions, matchPaths), positions, true
}

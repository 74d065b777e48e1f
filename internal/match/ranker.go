package match

import (
	"cmp"
	"log"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NoScore is the score given to every entry when the query is empty
const NoScore = 0

const defaultCacheSize = 64

// Result is one ranked entry
type Result struct {
	// Index into the entry source
	Index int
	// Score is higher for better matches; NoScore for an empty query
	Score int
	// Positions are the matched rune indices in the entry text, ascending
	Positions []int
}

// Source is the read side of the entry store that ranking needs
type Source interface {
	Len() int
	Text(i int) string
	Generation() uint64
}

// Ranker filters and orders entries for a query. Every call to Rank gives
// the same answer a full rescan would; narrowing from the previous query and
// the per-query cache only skip work.
type Ranker struct {
	opts   Options
	scorer Scorer
	cache  *lru.Cache[string, []Result]

	generation  uint64
	lastQuery   string
	lastResults []Result
	hasLast     bool
}

// NewRanker creates a ranker; a nil scorer means NativeScorer
func NewRanker(opts Options, scorer Scorer) *Ranker {
	if scorer == nil {
		scorer = NativeScorer{}
	}
	cache, err := lru.New[string, []Result](defaultCacheSize)
	if err != nil {
		log.Printf("match: result cache disabled: %v", err)
	}
	return &Ranker{
		opts:   opts,
		scorer: scorer,
		cache:  cache,
	}
}

// Options returns the current matching options
func (r *Ranker) Options() Options {
	return r.opts
}

// SetOptions changes the matching options, dropping cached results if they differ
func (r *Ranker) SetOptions(opts Options) {
	if opts == r.opts {
		return
	}
	r.opts = opts
	r.Invalidate()
}

// SetScorer swaps the fuzzy scoring primitive
func (r *Ranker) SetScorer(scorer Scorer) {
	if scorer == nil {
		scorer = NativeScorer{}
	}
	r.scorer = scorer
	r.Invalidate()
}

// Invalidate forgets every cached result
func (r *Ranker) Invalidate() {
	if r.cache != nil {
		r.cache.Purge()
	}
	r.lastQuery = ""
	r.lastResults = nil
	r.hasLast = false
}

// Rank returns the entries of src matching query, best first. Equal scores
// keep insertion order. The returned slice is shared and must not be modified.
func (r *Ranker) Rank(query string, src Source) []Result {
	if gen := src.Generation(); gen != r.generation {
		r.Invalidate()
		r.generation = gen
	}

	pattern := Parse(query, r.opts.CaseMatching)
	if pattern.Empty() {
		results := make([]Result, src.Len())
		for i := range results {
			results[i] = Result{Index: i, Score: NoScore}
		}
		r.remember(query, results)
		return results
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(query); ok {
			r.remember(query, cached)
			return cached
		}
	}

	var results []Result
	if r.hasLast && canNarrow(r.lastQuery, query) {
		results = make([]Result, 0, len(r.lastResults))
		for _, prev := range r.lastResults {
			if res, ok := r.score(pattern, prev.Index, src.Text(prev.Index)); ok {
				results = append(results, res)
			}
		}
	} else {
		results = make([]Result, 0, src.Len())
		for i := 0; i < src.Len(); i++ {
			if res, ok := r.score(pattern, i, src.Text(i)); ok {
				results = append(results, res)
			}
		}
	}

	slices.SortFunc(results, func(a, b Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	if r.cache != nil {
		r.cache.Add(query, results)
	}
	r.remember(query, results)
	return results
}

func (r *Ranker) remember(query string, results []Result) {
	r.lastQuery = query
	r.lastResults = results
	r.hasLast = true
}

func (r *Ranker) score(p Pattern, index int, text string) (Result, bool) {
	score, positions, ok := MatchPattern(p, text, r.scorer, r.opts.MatchPaths)
	if !ok {
		return Result{}, false
	}
	return Result{Index: index, Score: score, Positions: positions}, true
}

// canNarrow reports whether every match of next is guaranteed to be a match
// of prev, so only prev's survivors need rescoring.
func canNarrow(prev, next string) bool {
	return strings.HasPrefix(next, prev) && !strings.ContainsAny(next, `!'^$\`)
}

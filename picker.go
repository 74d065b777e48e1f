package fuzzypick

import (
	"iter"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/darksworm/fuzzypick/internal/config"
	"github.com/darksworm/fuzzypick/internal/entries"
	"github.com/darksworm/fuzzypick/internal/events"
	"github.com/darksworm/fuzzypick/internal/input"
	"github.com/darksworm/fuzzypick/internal/input/types"
	"github.com/darksworm/fuzzypick/internal/match"
	"github.com/darksworm/fuzzypick/internal/navigation"
	"github.com/darksworm/fuzzypick/internal/views"
)

// Picker is a fuzzy finder over entries carrying payloads of type T.
// It is not safe for concurrent use.
type Picker[T any] struct {
	opts Options

	store    *entries.Store[T]
	ranker   *match.Ranker
	input    *input.Handler
	nav      *navigation.Service
	bus      *events.Bus
	renderer *views.Renderer

	results     []match.Result
	needsRedraw bool
}

// New creates an empty picker with the default options
func New[T any]() *Picker[T] {
	return NewWithOptions[T](DefaultOptions())
}

// NewWithOptions creates an empty picker
func NewWithOptions[T any](opts Options) *Picker[T] {
	bus := events.NewBus()
	p := &Picker[T]{
		store:    entries.NewStore[T](),
		ranker:   match.NewRanker(opts.MatchOptions(), nil),
		input:    input.New(input.DefaultKeyMap()),
		nav:      navigation.NewService(bus),
		bus:      bus,
		renderer: views.NewRenderer(nil),
	}

	markDirty := func(interface{}) { p.needsRedraw = true }
	for _, sample := range []interface{}{
		navigation.CursorMovedEvent{},
		navigation.ViewportChangedEvent{},
		events.QueryChangedEvent{},
		events.ModeChangedEvent{},
		events.EntriesChangedEvent{},
		events.ResultsChangedEvent{},
	} {
		bus.SubscribeTo(sample, markDirty)
	}

	p.Configure(opts)
	if opts.StartInSearchMode {
		p.EnterSearchMode()
	}
	p.needsRedraw = true
	return p
}

// Configure applies a full set of options. Entries, query and mode are
// kept; StartInSearchMode only takes effect at construction and in Load.
func (p *Picker[T]) Configure(opts Options) {
	scorer, err := match.ScorerByName(opts.Scorer)
	if err != nil {
		log.Printf("picker: %v, using %s", err, match.ScorerNative)
		scorer = match.NativeScorer{}
		opts.Scorer = match.ScorerNative
	}
	if opts.Scorer != p.opts.Scorer {
		p.ranker.SetScorer(scorer)
	}

	prev, hadPrev := p.selectedText()
	p.opts = opts
	p.nav.SetWrap(opts.WrapNavigation)
	p.ranker.SetOptions(opts.MatchOptions())
	p.refresh(prev, hadPrev)
}

// Load applies configuration overrides, as produced by config files or a
// host's plugin settings, on top of the current options. Bad values are
// logged and ignored. A start_in_search_mode override switches the mode
// right away, either way.
func (p *Picker[T]) Load(overrides map[string]string) {
	p.Configure(config.Load(p.opts, overrides))
	if search, ok := config.StartMode(overrides); ok {
		if search {
			p.EnterSearchMode()
		} else {
			p.EnterNormalMode()
		}
	}
}

// Options returns the current options
func (p *Picker[T]) Options() Options {
	return p.opts
}

// SetStyles replaces the styles used by Render
func (p *Picker[T]) SetStyles(styles *Styles) {
	p.renderer = views.NewRenderer(styles)
	p.needsRedraw = true
}

// Update feeds one message to the picker. Messages other than key presses
// are ignored so the host can handle them.
func (p *Picker[T]) Update(msg tea.Msg) Response[T] {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return Response[T]{}
	}

	pos := p.input.Position()
	actions := p.input.HandleKey(key, pickerContext[T]{p})
	if p.input.Position() != pos {
		p.needsRedraw = true
	}

	for _, action := range actions {
		switch a := action.(type) {
		case types.NavigateAction:
			p.nav.Navigate(navigation.Direction(a.Direction))

		case types.SelectAction:
			index := a.Index
			if index < 0 {
				index = p.nav.GetCursor()
			}
			if index >= 0 && index < len(p.results) {
				return Response[T]{
					Kind:  ResponseSelect,
					Entry: p.store.At(p.results[index].Index),
				}
			}

		case types.CancelAction:
			return Response[T]{Kind: ResponseCancel}

		case types.ChangeModeAction:
			p.bus.Publish(events.ModeChangedEvent{Mode: a.Mode.String()})

		case types.UpdateTextAction:
			p.bus.Publish(events.QueryChangedEvent{Query: a.Text})
			p.rank()
			p.nav.Reset()
		}
	}
	return Response[T]{}
}

// NeedsRedraw reports whether anything visible changed since the last Render
func (p *Picker[T]) NeedsRedraw() bool {
	return p.needsRedraw
}

// Render draws the picker on a rows x cols grid: the prompt on the first
// row and as many results as fit below it, scrolled so the selection is
// visible. It clears the redraw flag.
func (p *Picker[T]) Render(rows, cols int) string {
	defer func() { p.needsRedraw = false }()
	if rows <= 0 || cols <= 0 {
		return ""
	}

	p.nav.SetViewportHeight(rows - 1)

	frame := views.Frame{
		Query:  p.input.Query(),
		Cursor: p.input.Position(),
		Search: p.input.Mode() == types.ModeSearch,
	}
	if p.nav.HasSelection() {
		offset, cursor := p.nav.GetViewportOffset(), p.nav.GetCursor()
		end := min(len(p.results), offset+rows-1)
		for i := offset; i < end; i++ {
			result := p.results[i]
			frame.Rows = append(frame.Rows, views.Row{
				Text:      p.store.Text(result.Index),
				Positions: result.Positions,
				Selected:  i == cursor,
			})
		}
	}
	return p.renderer.Render(frame, rows, cols)
}

// Append adds entries and re-ranks, keeping the selection on the same text
// when it is still listed
func (p *Picker[T]) Append(items ...Entry[T]) {
	if len(items) == 0 {
		return
	}
	prev, hadPrev := p.selectedText()
	p.store.Append(items...)
	p.bus.Publish(events.EntriesChangedEvent{Count: p.store.Len()})
	p.refresh(prev, hadPrev)
}

// Extend adds every entry of seq, like Append
func (p *Picker[T]) Extend(seq iter.Seq[Entry[T]]) {
	prev, hadPrev := p.selectedText()
	if p.store.Extend(seq) == 0 {
		return
	}
	p.bus.Publish(events.EntriesChangedEvent{Count: p.store.Len()})
	p.refresh(prev, hadPrev)
}

// Clear removes all entries
func (p *Picker[T]) Clear() {
	prev, hadPrev := p.selectedText()
	p.store.Clear()
	p.bus.Publish(events.EntriesChangedEvent{Count: 0})
	p.refresh(prev, hadPrev)
}

// Entries returns all entries in insertion order. The slice must not be
// modified.
func (p *Picker[T]) Entries() []Entry[T] {
	return p.store.All()
}

// Results returns the ranked list, best match first
func (p *Picker[T]) Results() []Match[T] {
	out := make([]Match[T], len(p.results))
	for i, r := range p.results {
		out[i] = Match[T]{
			Entry:     p.store.At(r.Index),
			Score:     r.Score,
			Positions: r.Positions,
		}
	}
	return out
}

// ResultCount returns the length of the ranked list
func (p *Picker[T]) ResultCount() int {
	return len(p.results)
}

// Selected returns the highlighted entry, if any
func (p *Picker[T]) Selected() (Entry[T], bool) {
	if !p.nav.HasSelection() {
		var zero Entry[T]
		return zero, false
	}
	return p.store.At(p.results[p.nav.GetCursor()].Index), true
}

// SelectedIndex returns the position of the selection in the ranked list,
// or -1 when the list is empty
func (p *Picker[T]) SelectedIndex() int {
	if !p.nav.HasSelection() {
		return -1
	}
	return p.nav.GetCursor()
}

// Select highlights the i-th ranked result, clamped to the list
func (p *Picker[T]) Select(i int) {
	p.nav.MoveToIndex(i)
}

// Query returns the current query text
func (p *Picker[T]) Query() string {
	return p.input.Query()
}

// QueryPosition returns the query cursor, in runes
func (p *Picker[T]) QueryPosition() int {
	return p.input.Position()
}

// SetQuery replaces the query and re-ranks
func (p *Picker[T]) SetQuery(query string) {
	if query == p.input.Query() {
		return
	}
	p.input.SetQuery(query)
	p.bus.Publish(events.QueryChangedEvent{Query: query})
	p.rank()
	p.nav.Reset()
}

// Mode returns the current input mode
func (p *Picker[T]) Mode() Mode {
	return p.input.Mode()
}

// EnterSearchMode focuses the query, as if the user pressed /
func (p *Picker[T]) EnterSearchMode() {
	p.changeMode(types.ModeSearch)
}

// EnterNormalMode focuses the list, as if the user pressed Esc while searching
func (p *Picker[T]) EnterNormalMode() {
	p.changeMode(types.ModeNormal)
}

func (p *Picker[T]) changeMode(mode types.Mode) {
	if p.input.Mode() == mode {
		return
	}
	p.input.ChangeMode(mode, pickerContext[T]{p})
	p.bus.Publish(events.ModeChangedEvent{Mode: mode.String()})
}

// KeyMap returns the key bindings, for help views
func (p *Picker[T]) KeyMap() KeyMap {
	return p.input.Keys()
}

// UseCaseMatchingRespect always matches case
func (p *Picker[T]) UseCaseMatchingRespect() {
	p.setCaseMatching(CaseRespect)
}

// UseCaseMatchingIgnore never matches case
func (p *Picker[T]) UseCaseMatchingIgnore() {
	p.setCaseMatching(CaseIgnore)
}

// UseCaseMatchingSmart matches case only for terms containing an uppercase
// letter. This is the default.
func (p *Picker[T]) UseCaseMatchingSmart() {
	p.setCaseMatching(CaseSmart)
}

func (p *Picker[T]) setCaseMatching(cm CaseMatching) {
	opts := p.opts
	opts.CaseMatching = cm
	p.Configure(opts)
}

// SetMatchPaths tunes the bonuses for file paths
func (p *Picker[T]) SetMatchPaths() {
	p.setMatchPaths(true)
}

// ClearMatchPaths goes back to bonuses for arbitrary text. This is the
// default.
func (p *Picker[T]) ClearMatchPaths() {
	p.setMatchPaths(false)
}

func (p *Picker[T]) setMatchPaths(on bool) {
	opts := p.opts
	opts.MatchPaths = on
	p.Configure(opts)
}

// rank rebuilds the ranked list for the current query
func (p *Picker[T]) rank() {
	p.results = p.ranker.Rank(p.input.Query(), p.store)
	p.nav.SetCount(len(p.results))
	p.bus.Publish(events.ResultsChangedEvent{Count: len(p.results)})
}

func (p *Picker[T]) selectedText() (string, bool) {
	if !p.nav.HasSelection() || p.nav.GetCursor() >= len(p.results) {
		return "", false
	}
	return p.store.Text(p.results[p.nav.GetCursor()].Index), true
}

// refresh re-ranks and moves the selection to the first result showing
// prev, or to the top
func (p *Picker[T]) refresh(prev string, hadPrev bool) {
	p.rank()

	target := 0
	if hadPrev {
		for i, r := range p.results {
			if p.store.Text(r.Index) == prev {
				target = i
				break
			}
		}
	}
	p.nav.MoveToIndex(target)
}

// pickerContext exposes picker state to the input handler
type pickerContext[T any] struct {
	p *Picker[T]
}

func (c pickerContext[T]) CurrentIndex() int {
	return c.p.nav.GetCursor()
}

func (c pickerContext[T]) TotalItems() int {
	return len(c.p.results)
}

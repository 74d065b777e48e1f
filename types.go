package fuzzypick

import (
	"github.com/darksworm/fuzzypick/internal/config"
	"github.com/darksworm/fuzzypick/internal/entries"
	"github.com/darksworm/fuzzypick/internal/input"
	"github.com/darksworm/fuzzypick/internal/input/types"
	"github.com/darksworm/fuzzypick/internal/match"
	"github.com/darksworm/fuzzypick/internal/views"
)

// Entry is one selectable item: the text shown and matched, and a payload
// returned on selection.
type Entry[T any] = entries.Entry[T]

// Options configure a picker
type Options = config.Options

// CaseMatching controls how letter case is treated when matching
type CaseMatching = match.CaseMatching

const (
	CaseSmart   = match.CaseSmart
	CaseRespect = match.CaseRespect
	CaseIgnore  = match.CaseIgnore
)

// Mode is the input mode of a picker
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
)

// KeyMap holds the key bindings; it implements help.KeyMap
type KeyMap = input.KeyMap

// Styles holds the lipgloss styles used by Render
type Styles = views.Styles

// DefaultOptions returns the built-in configuration
func DefaultOptions() Options {
	return config.Default()
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return input.DefaultKeyMap()
}

// DefaultStyles returns the default colors
func DefaultStyles() *Styles {
	return views.NewStyles()
}

// PlainStyles returns styles that add no escape sequences
func PlainStyles() *Styles {
	return views.PlainStyles()
}

// ResponseKind tells the host what Update decided
type ResponseKind int

const (
	// ResponseNone means the picker is still active
	ResponseNone ResponseKind = iota
	// ResponseSelect carries the chosen entry
	ResponseSelect
	// ResponseCancel means the user dismissed the picker
	ResponseCancel
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseSelect:
		return "select"
	case ResponseCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Response is the result of one Update call. Entry is only set for
// ResponseSelect.
type Response[T any] struct {
	Kind  ResponseKind
	Entry Entry[T]
}

// Match is one ranked result
type Match[T any] struct {
	Entry Entry[T]
	// Score is higher for better matches and zero for an empty query
	Score int
	// Positions are the matched rune indices of Entry.String
	Positions []int
}

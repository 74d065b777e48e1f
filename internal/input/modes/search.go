package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darksworm/fuzzypick/internal/input/types"
)

// SearchMode edits the query. Keys it does not claim go to the text input.
type SearchMode struct {
	keys      *types.KeyMap
	textInput *textinput.Model
}

func NewSearchMode(keys *types.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{
		keys:      keys,
		textInput: ti,
	}
}

func (m *SearchMode) Name() string {
	return "search"
}

// Enter focuses the query, keeping whatever was typed before
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ExitSearch):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, m.keys.ClearQuery):
		return []types.Action{types.ClearTextAction{}}, true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}

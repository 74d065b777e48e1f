package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darksworm/fuzzypick/internal/input/types"
)

// GlobalKeys handles the keys that behave the same in every mode.
// It is consulted before the current mode.
type GlobalKeys struct {
	keys *types.KeyMap
}

func NewGlobalKeys(keys *types.KeyMap) *GlobalKeys {
	return &GlobalKeys{keys: keys}
}

func (g *GlobalKeys) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, g.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, g.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, g.keys.Confirm):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectAction{Index: -1}}, true
	case key.Matches(msg, g.keys.Cancel):
		return []types.Action{types.CancelAction{}}, true
	}
	return nil, false
}

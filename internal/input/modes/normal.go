package modes

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darksworm/fuzzypick/internal/input/types"
)

// NormalMode drives the result list
type NormalMode struct {
	keys *types.KeyMap
}

func NewNormalMode(keys *types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.LineDown):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.LineUp):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.PickNth):
		// 1-8 pick the n-th ranked result; out of range picks nothing
		n, err := strconv.Atoi(msg.String())
		if err != nil || n < 1 || n > ctx.TotalItems() {
			return nil, true
		}
		return []types.Action{types.SelectAction{Index: n - 1}}, true

	case key.Matches(msg, m.keys.PickLast):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectAction{Index: ctx.TotalItems() - 1}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.CancelAction{}}, true
	}

	return nil, false
}

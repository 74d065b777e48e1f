package input

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/darksworm/fuzzypick/internal/input/modes"
	"github.com/darksworm/fuzzypick/internal/input/types"
)

// KeyMap defines the key bindings of the picker
type KeyMap = types.KeyMap

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return types.DefaultKeyMap()
}

// Handler turns key presses into picker actions. It owns the query buffer.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	global      *modes.GlobalKeys
	keys        *KeyMap
	textInput   *textinput.Model
}

func New(keys KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view layer

	h := &Handler{
		currentMode: types.ModeNormal,
		keys:        &keys,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.global = modes.NewGlobalKeys(h.keys)
	h.modes[types.ModeNormal] = modes.NewNormalMode(h.keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.keys, h.textInput)

	return h
}

// HandleKey processes a key press. Global bindings are checked before the
// current mode; keys nobody claims in search mode edit the query. An
// UpdateTextAction is appended whenever the query text changed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	before := h.textInput.Value()

	actions, consumed := h.global.HandleKey(msg, ctx)
	if !consumed {
		if handler := h.modes[h.currentMode]; handler != nil {
			actions, consumed = handler.HandleKey(msg, ctx)
		}
	}

	var allActions []types.Action
	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			allActions = append(allActions, h.switchMode(a.Mode, ctx)...)
			allActions = append(allActions, a)
		case types.ClearTextAction:
			h.textInput.Reset()
		default:
			allActions = append(allActions, action)
		}
	}

	// If we're in search mode and nobody handled the key, pass it to text input
	if !consumed && h.currentMode == types.ModeSearch {
		*h.textInput, _ = h.textInput.Update(msg)
	}

	if text := h.textInput.Value(); text != before {
		allActions = append(allActions, types.UpdateTextAction{Text: text})
	}
	return allActions
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	from, to := h.modes[h.currentMode], h.modes[mode]
	if from != nil {
		actions = append(actions, from.Exit(ctx)...)
	}
	h.currentMode = mode
	if to != nil {
		actions = append(actions, to.Enter(ctx)...)
		log.Printf("input: entered %s mode", to.Name())
	}
	return actions
}

// ChangeMode changes the current input mode
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) {
	h.switchMode(mode, ctx)
}

// Mode returns the current input mode
func (h *Handler) Mode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Query returns the current query text
func (h *Handler) Query() string {
	return h.textInput.Value()
}

// Position returns the query cursor, in runes
func (h *Handler) Position() int {
	return h.textInput.Position()
}

// SetQuery replaces the query and puts the cursor at its end
func (h *Handler) SetQuery(query string) {
	h.textInput.SetValue(query)
	h.textInput.CursorEnd()
}

// Keys returns the active key bindings
func (h *Handler) Keys() KeyMap {
	return *h.keys
}

package input

import (
	"bytes"
	"log"
	"math/rand"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darksworm/fuzzypick/internal/input/types"
)

type fakeContext struct {
	current int
	total   int
}

func (c fakeContext) CurrentIndex() int { return c.current }
func (c fakeContext) TotalItems() int   { return c.total }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func newSearchHandler(t *testing.T) *Handler {
	t.Helper()
	h := New(DefaultKeyMap())
	actions := h.HandleKey(runes("/"), fakeContext{total: 3})
	require.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, actions)
	require.Equal(t, types.ModeSearch, h.Mode())
	return h
}

func TestNormalModeNavigation(t *testing.T) {
	h := New(DefaultKeyMap())
	ctx := fakeContext{total: 5}

	tests := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{runes("j"), types.NavigateAction{Direction: "down"}},
		{runes("k"), types.NavigateAction{Direction: "up"}},
		{runes("g"), types.NavigateAction{Direction: "home"}},
		{runes("G"), types.NavigateAction{Direction: "end"}},
		{keyType(tea.KeyHome), types.NavigateAction{Direction: "home"}},
		{keyType(tea.KeyPgDown), types.NavigateAction{Direction: "pagedown"}},
		{keyType(tea.KeyPgUp), types.NavigateAction{Direction: "pageup"}},
		{keyType(tea.KeyDown), types.NavigateAction{Direction: "down"}},
		{keyType(tea.KeyTab), types.NavigateAction{Direction: "down"}},
		{keyType(tea.KeyCtrlN), types.NavigateAction{Direction: "down"}},
		{keyType(tea.KeyUp), types.NavigateAction{Direction: "up"}},
		{keyType(tea.KeyShiftTab), types.NavigateAction{Direction: "up"}},
		{keyType(tea.KeyCtrlP), types.NavigateAction{Direction: "up"}},
	}
	for _, tt := range tests {
		assert.Equal(t, []types.Action{tt.want}, h.HandleKey(tt.msg, ctx), tt.msg.String())
	}
	assert.Equal(t, types.ModeNormal, h.Mode())
	assert.Empty(t, h.Query())
}

func TestNormalModePickNth(t *testing.T) {
	h := New(DefaultKeyMap())
	ctx := fakeContext{total: 5}

	assert.Equal(t, []types.Action{types.SelectAction{Index: 0}}, h.HandleKey(runes("1"), ctx))
	assert.Equal(t, []types.Action{types.SelectAction{Index: 4}}, h.HandleKey(runes("5"), ctx))
	assert.Empty(t, h.HandleKey(runes("6"), ctx), "beyond the ranked list")
	assert.Equal(t, []types.Action{types.SelectAction{Index: 4}}, h.HandleKey(runes("9"), ctx))

	empty := fakeContext{}
	assert.Empty(t, h.HandleKey(runes("1"), empty))
	assert.Empty(t, h.HandleKey(runes("9"), empty))
}

func TestConfirmAndCancel(t *testing.T) {
	h := New(DefaultKeyMap())

	assert.Equal(t, []types.Action{types.SelectAction{Index: -1}}, h.HandleKey(keyType(tea.KeyEnter), fakeContext{total: 1}))
	assert.Empty(t, h.HandleKey(keyType(tea.KeyEnter), fakeContext{}), "nothing to confirm")
	assert.Equal(t, []types.Action{types.CancelAction{}}, h.HandleKey(keyType(tea.KeyCtrlC), fakeContext{}))
	assert.Equal(t, []types.Action{types.CancelAction{}}, h.HandleKey(keyType(tea.KeyEsc), fakeContext{}))

	h = newSearchHandler(t)
	assert.Equal(t, []types.Action{types.CancelAction{}}, h.HandleKey(keyType(tea.KeyCtrlC), fakeContext{}))
	assert.Equal(t, []types.Action{types.SelectAction{Index: -1}}, h.HandleKey(keyType(tea.KeyEnter), fakeContext{total: 2}))
}

func TestSearchModeEditsQuery(t *testing.T) {
	h := newSearchHandler(t)
	ctx := fakeContext{total: 3}

	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "j"}}, h.HandleKey(runes("j"), ctx), "letters are text in search mode")
	h.HandleKey(runes("k"), ctx)
	h.HandleKey(runes("é"), ctx)
	assert.Equal(t, "jké", h.Query())
	assert.Equal(t, 3, h.Position())

	assert.Empty(t, h.HandleKey(keyType(tea.KeyLeft), ctx), "moving the cursor does not change the text")
	assert.Equal(t, 2, h.Position())
	h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx)
	assert.Equal(t, "jk é", h.Query())

	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "jké"}}, h.HandleKey(keyType(tea.KeyBackspace), ctx))
	assert.Equal(t, 2, h.Position())
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	h := newSearchHandler(t)

	assert.Empty(t, h.HandleKey(keyType(tea.KeyBackspace), fakeContext{}))
	assert.Equal(t, "", h.Query())
	assert.Equal(t, 0, h.Position())
}

func TestClearQuery(t *testing.T) {
	h := newSearchHandler(t)
	h.SetQuery("needle")
	require.Equal(t, 6, h.Position())

	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: ""}}, h.HandleKey(keyType(tea.KeyCtrlU), fakeContext{}))
	assert.Equal(t, "", h.Query())
	assert.Equal(t, 0, h.Position())

	assert.Empty(t, h.HandleKey(keyType(tea.KeyCtrlU), fakeContext{}), "already empty")
}

func TestEscapeLeavesSearchKeepingQuery(t *testing.T) {
	h := newSearchHandler(t)
	h.HandleKey(runes("abc"), fakeContext{})

	actions := h.HandleKey(keyType(tea.KeyEsc), fakeContext{})
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, actions)
	assert.Equal(t, types.ModeNormal, h.Mode())
	assert.Equal(t, "abc", h.Query())

	// typing in normal mode does not touch the query
	h.HandleKey(runes("x"), fakeContext{})
	assert.Equal(t, "abc", h.Query())

	h.ChangeMode(types.ModeSearch, fakeContext{})
	h.HandleKey(runes("d"), fakeContext{})
	assert.Equal(t, "abcd", h.Query())
}

func TestCursorStaysInBounds(t *testing.T) {
	h := newSearchHandler(t)
	ctx := fakeContext{}
	rng := rand.New(rand.NewSource(7))

	keys := []tea.KeyMsg{
		runes("a"), runes("ü"), runes("Z"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		keyType(tea.KeyBackspace), keyType(tea.KeyBackspace),
		keyType(tea.KeyLeft), keyType(tea.KeyRight),
		keyType(tea.KeyDelete), keyType(tea.KeyCtrlA), keyType(tea.KeyCtrlE),
	}
	for i := 0; i < 500; i++ {
		h.HandleKey(keys[rng.Intn(len(keys))], ctx)
		pos := h.Position()
		require.GreaterOrEqual(t, pos, 0)
		require.LessOrEqual(t, pos, utf8.RuneCountInString(h.Query()))
	}
}

func TestModeSwitchIsLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	h := newSearchHandler(t)
	assert.Contains(t, buf.String(), "entered search mode")

	h.ChangeMode(types.ModeNormal, fakeContext{total: 3})
	assert.Contains(t, buf.String(), "entered normal mode")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "normal", types.ModeNormal.String())
	assert.Equal(t, "search", types.ModeSearch.String())
}

// Package fuzzypick is an embeddable fuzzy finder for Bubble Tea programs.
//
// A host owns a Picker, feeds it entries with Extend, forwards every tea.Msg
// to Update and draws the string returned by Render. Update reports when the
// user picked an entry or cancelled:
//
//	p := fuzzypick.New[string]()
//	p.Append(fuzzypick.Entry[string]{String: "main.go", Data: "/src/main.go"})
//
//	switch resp := p.Update(msg); resp.Kind {
//	case fuzzypick.ResponseSelect:
//		open(resp.Entry.Data)
//	case fuzzypick.ResponseCancel:
//		return m, tea.Quit
//	}
//	if p.NeedsRedraw() {
//		view = p.Render(height, width)
//	}
//
// Queries use an fzf-like syntax: whitespace separates terms, 'foo matches a
// substring, ^foo a prefix, foo$ a suffix and !foo excludes entries.
package fuzzypick

package views

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	// SearchHint is shown in the prompt row while the query is empty in normal mode
	SearchHint = "(press / to search)"
	// Elision replaces the tail of a result that does not fit
	Elision = " [...]"

	markerSelected   = "> "
	markerUnselected = "  "
	promptIndent     = "  "
)

// Row is one visible result
type Row struct {
	Text      string
	Positions []int // matched rune indices, ascending
	Selected  bool
}

// Frame is everything needed to draw the picker once
type Frame struct {
	Query  string
	Cursor int // query cursor, in runes
	Search bool
	// Rows are the visible results, top to bottom
	Rows []Row
}

// Renderer lays out a frame on a rows x cols grid
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer; nil styles means NewStyles
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Render draws the prompt row followed by at most rows-1 result rows. Every
// line fits in cols cells. Nothing is drawn for an empty grid.
func (r *Renderer) Render(f Frame, rows, cols int) string {
	if rows <= 0 || cols <= 0 {
		return ""
	}

	lines := make([]string, 0, rows)
	lines = append(lines, r.renderPrompt(f, cols))
	for i, row := range f.Rows {
		if i >= rows-1 {
			break
		}
		lines = append(lines, r.renderRow(row, cols))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderPrompt(f Frame, cols int) string {
	var b strings.Builder
	indent, width := fit(promptIndent, cols)
	b.WriteString(indent)

	if !f.Search && f.Query == "" {
		hint, _ := fit(SearchHint, cols-width)
		if hint != "" {
			b.WriteString(r.styles.Hint.Render(hint))
		}
		return b.String()
	}

	query := []rune(sanitize(f.Query))
	cursor := -1
	if f.Search {
		cursor = max(0, min(f.Cursor, len(query)))
	}

	var run []rune
	flush := func() {
		if len(run) > 0 {
			b.WriteString(r.styles.Prompt.Render(string(run)))
			run = run[:0]
		}
	}
	for i, c := range query {
		w := runewidth.RuneWidth(c)
		if width+w > cols {
			flush()
			return b.String()
		}
		width += w
		if i == cursor {
			flush()
			b.WriteString(r.styles.Cursor.Render(string(c)))
			continue
		}
		run = append(run, c)
	}
	flush()
	if cursor == len(query) && width < cols {
		b.WriteString(r.styles.Cursor.Render(" "))
	}
	return b.String()
}

func (r *Renderer) renderRow(row Row, cols int) string {
	var b strings.Builder

	marker := markerUnselected
	if row.Selected {
		marker = markerSelected
	}
	marker, width := fit(marker, cols)
	if row.Selected && marker != "" {
		b.WriteString(r.styles.Marker.Render(marker))
	} else {
		b.WriteString(marker)
	}

	avail := cols - width
	if avail <= 0 {
		return b.String()
	}

	text := []rune(sanitize(row.Text))
	visible, elided := elide(text, avail)

	normal, match := r.styles.Normal, r.styles.Match
	if row.Selected {
		normal, match = r.styles.Selected, r.styles.SelectedMatch
	}

	// Batch consecutive runes of the same kind into one styled segment
	positions := row.Positions
	start := 0
	for start < visible {
		for len(positions) > 0 && positions[0] < start {
			positions = positions[1:]
		}
		matched := len(positions) > 0 && positions[0] == start
		end := start
		for end < visible {
			isMatch := len(positions) > 0 && positions[0] == end
			if isMatch != matched {
				break
			}
			if isMatch {
				positions = positions[1:]
			}
			end++
		}
		style := normal
		if matched {
			style = match
		}
		b.WriteString(style.Render(string(text[start:end])))
		start = end
	}

	if elided {
		b.WriteString(r.styles.Elision.Render(Elision))
	}
	return b.String()
}

// elide returns how many leading runes of text to draw in avail cells and
// whether the elision marker follows them. Text that does not fit is cut
// to leave room for the marker, or hard-cut when the marker itself does
// not fit.
func elide(text []rune, avail int) (int, bool) {
	total := 0
	for _, c := range text {
		total += runewidth.RuneWidth(c)
	}
	if total <= avail {
		return len(text), false
	}

	elisionWidth := runewidth.StringWidth(Elision)
	budget, elided := avail, false
	if avail > elisionWidth {
		budget, elided = avail-elisionWidth, true
	}

	width := 0
	for i, c := range text {
		w := runewidth.RuneWidth(c)
		if width+w > budget {
			return i, elided
		}
		width += w
	}
	return len(text), elided
}

// fit cuts s to at most cols cells and returns it with its width
func fit(s string, cols int) (string, int) {
	if cols <= 0 {
		return "", 0
	}
	width := 0
	for i, c := range s {
		w := runewidth.RuneWidth(c)
		if width+w > cols {
			return s[:i], width
		}
		width += w
	}
	return s, width
}

// sanitize replaces control characters with spaces, one for one, so rune
// positions computed on the original text stay valid
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

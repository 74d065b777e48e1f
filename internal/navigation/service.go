package navigation

import (
	"github.com/darksworm/fuzzypick/internal/events"
)

// Service handles all selection and scrolling logic over a ranked list
type Service struct {
	state *State
	bus   events.EventBus
	wrap  bool
}

// NewService creates a navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			ViewportHeight: 0, // unknown until the first render
		},
		bus: bus,
	}
}

// SetWrap makes up/down wrap around the ends of the list instead of clamping
func (s *Service) SetWrap(wrap bool) {
	s.wrap = wrap
}

// GetCursor returns the selected position in the ranked list
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// HasSelection is false when the ranked list is empty
func (s *Service) HasSelection() bool {
	return s.state.Count > 0
}

// GetViewportOffset returns the first visible position
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns the number of visible result rows
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// Snapshot returns a copy of the current state
func (s *Service) Snapshot() State {
	return *s.state
}

// SetViewportHeight updates the number of visible result rows
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	if height != s.state.ViewportHeight {
		s.state.ViewportHeight = height
		s.publishViewport()
	}
	s.ensureVisible()
}

// SetCount updates the ranked list length and re-clamps the cursor
func (s *Service) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	s.state.Count = count
	s.MoveToIndex(s.state.Cursor)
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	if s.state.Count == 0 {
		return
	}
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	case DirectionPageUp:
		s.pageUp()
	case DirectionPageDown:
		s.pageDown()
	case DirectionHome:
		s.moveToStart()
	case DirectionEnd:
		s.moveToEnd()
	}

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// MoveToIndex moves cursor to specific index, clamped to the list
func (s *Service) MoveToIndex(index int) {
	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// Reset moves to the top of the list and scrolls back to it
func (s *Service) Reset() {
	s.MoveToIndex(0)
	if s.state.ViewportOffset != 0 {
		s.state.ViewportOffset = 0
		s.publishViewport()
	}
}

func (s *Service) maxIndex() int {
	return s.state.Count - 1
}

func (s *Service) moveUp() {
	switch {
	case s.state.Cursor > 0:
		s.state.Cursor--
	case s.wrap:
		s.state.Cursor = s.maxIndex()
	}
	s.ensureVisible()
}

func (s *Service) moveDown() {
	switch {
	case s.state.Cursor < s.maxIndex():
		s.state.Cursor++
	case s.wrap:
		s.state.Cursor = 0
	}
	s.ensureVisible()
}

func (s *Service) pageSize() int {
	return max(1, s.state.ViewportHeight-1)
}

func (s *Service) pageUp() {
	pageSize := s.pageSize()
	s.state.Cursor = s.clampIndex(s.state.Cursor - pageSize)

	// Also scroll viewport up
	offset := max(0, s.state.ViewportOffset-pageSize)
	if offset != s.state.ViewportOffset {
		s.state.ViewportOffset = offset
		s.publishViewport()
	}
	s.ensureVisible()
}

func (s *Service) pageDown() {
	s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageSize())
	s.ensureVisible()
}

func (s *Service) moveToStart() {
	s.state.Cursor = 0
	if s.state.ViewportOffset != 0 {
		s.state.ViewportOffset = 0
		s.publishViewport()
	}
}

func (s *Service) moveToEnd() {
	s.state.Cursor = s.maxIndex()
	s.ensureVisible()
}

func (s *Service) clampIndex(index int) int {
	if index > s.maxIndex() {
		index = s.maxIndex()
	}
	if index < 0 {
		return 0
	}
	return index
}

// ensureVisible restores offset <= cursor < offset+height with the smallest scroll
func (s *Service) ensureVisible() {
	if s.state.ViewportHeight <= 0 {
		return
	}
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
		s.publishViewport()
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
		s.publishViewport()
	}
}

func (s *Service) publishViewport() {
	s.bus.Publish(ViewportChangedEvent{
		Offset: s.state.ViewportOffset,
		Height: s.state.ViewportHeight,
	})
}

package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SelectAction picks a ranked result and ends the session
type SelectAction struct {
	Index int // position in the ranked list, -1 for current
}

func (a SelectAction) Type() string { return "select" }

type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Query actions
type ClearTextAction struct{}

func (a ClearTextAction) Type() string { return "clear_text" }

// UpdateTextAction reports that the query text changed
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

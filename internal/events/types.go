package events

// QueryChangedEvent is published after the query text changed
type QueryChangedEvent struct {
	Query string
}

// ModeChangedEvent is published after the input mode changed
type ModeChangedEvent struct {
	Mode string
}

// EntriesChangedEvent is published after entries were appended or cleared
type EntriesChangedEvent struct {
	Count int
}

// ResultsChangedEvent is published after the ranked list was rebuilt
type ResultsChangedEvent struct {
	Count int
}

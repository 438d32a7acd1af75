package message

// ToggleMsg signals a value was checked or unchecked in a filter's list
type ToggleMsg struct {
	Filter string
	Value  any
}

// ModeMsg signals a filter switched between in and not in
type ModeMsg struct {
	Filter string
	Negate bool
}

// ApplyMsg signals the active conditions should be run as a query
type ApplyMsg struct {
	Filter string
}

// CloseMsg signals the option list was dismissed
type CloseMsg struct {
	Filter string
}

package message

import tea "charm.land/bubbletea/v2"

// ToggleCmd returns a command to toggle a value
func ToggleCmd(filter string, value any) tea.Cmd {
	return func() tea.Msg {
		return ToggleMsg{
			Filter: filter,
			Value:  value,
		}
	}
}

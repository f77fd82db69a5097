package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd wraps an error into a command for the root model.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// InfoMsg is an informational message rendered in the footer.
type InfoMsg string

// ErrorMsg reports an error to be rendered in the footer and logged.
type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

// ReportError returns a command that reports an error.
func ReportError(err error, msg string, args ...any) tea.Cmd {
	return CmdHandler(NewErrorMsg(err, msg, args...))
}

// ReportInfo returns a command that reports an informational message.
func ReportInfo(msg string, args ...any) tea.Cmd {
	return CmdHandler(InfoMsg(fmt.Sprintf(msg, args...)))
}

// CmdHandler wraps a message in a command.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

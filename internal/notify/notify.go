// Package notify is the transient-message collaborator: the client-side
// equivalent of a snackbar. Notifications are fire-and-forget; no result is
// ever consumed.
package notify

import (
	"fmt"
	"io"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier displays a transient message to the user.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Console writes notifications to a terminal.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(message string, severity Severity) {
	prefix := "ok"
	if severity == SeverityError {
		prefix = "error"
	}
	fmt.Fprintf(c.w, "[%s] %s\n", prefix, message)
}

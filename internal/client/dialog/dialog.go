// Package dialog defines the notification and confirmation surfaces used by
// the paquetes client, with a line-oriented terminal implementation.
package dialog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// Notification is a titled message with a single dismiss action.
type Notification struct {
	Title        string
	Text         string
	Severity     Severity
	DismissLabel string
}

// Confirmation is an accept/cancel prompt.
type Confirmation struct {
	Title       string
	AcceptLabel string
	CancelLabel string
}

// Notifier shows notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Confirmer asks the user to accept or cancel. It blocks until the user answers.
type Confirmer interface {
	Confirm(ctx context.Context, c Confirmation) (bool, error)
}

// Terminal renders dialogs on a line-oriented terminal. It reads from the
// same scanner the shell uses so buffered input is never lost.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal returns a Terminal reading from in and writing to out.
func NewTerminal(in *bufio.Scanner, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Notify prints the notification. The dismiss label is shown but needs no input.
func (t *Terminal) Notify(_ context.Context, n Notification) {
	mark := "✔"
	if n.Severity == SeverityError {
		mark = "✘"
	}
	fmt.Fprintf(t.out, "%s %s", mark, n.Title)
	if n.Text != "" {
		fmt.Fprintf(t.out, " %s", n.Text)
	}
	if n.DismissLabel != "" {
		fmt.Fprintf(t.out, " [%s]", n.DismissLabel)
	}
	fmt.Fprintln(t.out)
}

// Confirm prints the prompt and waits for an answer. Only an explicit "y",
// "yes", "s", "si" or the accept label confirms; anything else cancels.
func (t *Terminal) Confirm(ctx context.Context, c Confirmation) (bool, error) {
	accept := c.AcceptLabel
	if accept == "" {
		accept = "y"
	}
	cancel := c.CancelLabel
	if cancel == "" {
		cancel = "N"
	}
	fmt.Fprintf(t.out, "%s [%s/%s]: ", c.Title, accept, cancel)

	line, err := t.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes", "s", "si", "sí", strings.ToLower(c.AcceptLabel):
		return line != "", nil
	}
	return false, nil
}

// Prompt asks for a value, returning def when the user enters nothing.
func (t *Terminal) Prompt(ctx context.Context, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(t.out, "%s: ", label)
	}
	line, err := t.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (t *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

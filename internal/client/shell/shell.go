// Package shell is the interactive terminal front end of the paquetes client.
// It plays the role of the page: it shows the table, holds the form and
// routes commands to the controller.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atinyakov/paquetes/internal/client/controller"
	"github.com/atinyakov/paquetes/internal/client/dialog"
	"github.com/atinyakov/paquetes/internal/client/transport"
	"github.com/atinyakov/paquetes/internal/client/view"
	"go.uber.org/zap"
)

const help = "Available commands: help, list, add, edit <id>, delete <id>, html, exit"

// Shell implements view.Presenter on a terminal and runs the command loop.
type Shell struct {
	in   *bufio.Scanner
	out  io.Writer
	term *dialog.Terminal
	ctrl *controller.Controller

	rows []view.Row
	form view.Form
}

// New wires a Shell to the API at endpoints.
func New(in io.Reader, out io.Writer, api *transport.Client, endpoints transport.Endpoints, log *zap.Logger) *Shell {
	s := &Shell{in: bufio.NewScanner(in), out: out}
	s.term = dialog.NewTerminal(s.in, out)
	s.ctrl = controller.New(api, endpoints, s, s.term, s.term, log)
	return s
}

// RenderTable replaces the shown table and prints it.
func (s *Shell) RenderTable(rows []view.Row) {
	s.rows = rows
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "No paquetes.")
		return
	}
	_ = view.RenderText(s.out, rows)
}

// SetForm replaces the form state.
func (s *Shell) SetForm(f view.Form) {
	s.form = f
}

// ResetForm clears the form state.
func (s *Shell) ResetForm() {
	s.form = view.Form{}
}

// Form returns the current form state.
func (s *Shell) Form() view.Form {
	return s.form
}

// Run lists the packages and then reads commands until exit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	_ = s.ctrl.List(ctx)

	for {
		fmt.Fprint(s.out, "paquetes> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		args := strings.Fields(s.in.Text())
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Fprintln(s.out, help)
		case "list":
			_ = s.ctrl.List(ctx)
		case "add":
			s.ResetForm()
			if err := s.fillAndSave(ctx); err != nil {
				return endOfInput(err)
			}
		case "edit", "delete":
			if len(args) < 2 {
				fmt.Fprintf(s.out, "Usage: %s <id>\n", args[0])
				continue
			}
			if err := s.action(ctx, view.ActionKind(args[0]), args[1]); err != nil {
				return endOfInput(err)
			}
		case "html":
			if err := view.RenderHTML(s.out, s.rows); err != nil {
				fmt.Fprintln(s.out, "render error:", err)
			}
		case "exit":
			fmt.Fprintln(s.out, "Bye")
			return nil
		default:
			fmt.Fprintln(s.out, "Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// action dispatches a row action. Edit continues into the form prompts.
// Only end of input is returned; request failures were already reported.
func (s *Shell) action(ctx context.Context, kind view.ActionKind, id string) error {
	err := s.ctrl.Dispatch(ctx, view.Action{Kind: kind, ID: id})
	switch {
	case errors.Is(err, io.EOF):
		return io.EOF
	case err != nil:
		return nil
	}
	if kind == view.ActionEdit {
		return s.fillAndSave(ctx)
	}
	return nil
}

// fillAndSave prompts for each field, offering the current value as default,
// and saves the resulting form.
func (s *Shell) fillAndSave(ctx context.Context) error {
	f := s.form
	for _, field := range []struct {
		label string
		dst   *string
	}{
		{"Ciudad", &f.Ciudad},
		{"Dias", &f.Dias},
		{"Precio", &f.Precio},
		{"Banner", &f.Banner},
	} {
		v, err := s.term.Prompt(ctx, field.label, *field.dst)
		if err != nil {
			return err
		}
		*field.dst = v
	}
	s.SetForm(f)
	_ = s.ctrl.Save(ctx, s.form)
	return nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

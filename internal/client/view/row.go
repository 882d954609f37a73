package view

import "github.com/atinyakov/paquetes/internal/models"

// ActionKind names a row-level user action.
type ActionKind string

const (
	// ActionEdit loads the row into the form.
	ActionEdit ActionKind = "edit"
	// ActionDelete removes the row after confirmation.
	ActionDelete ActionKind = "delete"
)

// Action is a trigger bound to one package.
type Action struct {
	Kind ActionKind
	ID   string
}

// Row describes one table row.
type Row struct {
	ID      string
	Ciudad  string
	Dias    string
	Precio  string
	Banner  string
	Actions []Action
}

// RowsFromPackages builds one row per package, in order.
func RowsFromPackages(pkgs []models.Package) []Row {
	rows := make([]Row, 0, len(pkgs))
	for _, p := range pkgs {
		id := p.ID.String()
		rows = append(rows, Row{
			ID:     id,
			Ciudad: p.Ciudad,
			Dias:   p.Dias.String(),
			Precio: p.Precio.String(),
			Banner: p.Banner,
			Actions: []Action{
				{Kind: ActionEdit, ID: id},
				{Kind: ActionDelete, ID: id},
			},
		})
	}
	return rows
}

// Presenter is the surface the controller draws on.
type Presenter interface {
	// RenderTable replaces the whole table body with rows.
	RenderTable(rows []Row)
	// SetForm shows f in the form fields.
	SetForm(f Form)
	// ResetForm clears every form field.
	ResetForm()
}

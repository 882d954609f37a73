// Package view holds the presentation-side values of the paquetes client:
// the form state, the table row descriptors and their renderers.
package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atinyakov/paquetes/internal/models"
)

// ErrValidation is returned when a required form field is empty.
var ErrValidation = errors.New("missing required field")

// Form is an immutable snapshot of the package form.
// An empty ID means the form describes a new package.
type Form struct {
	ID     string
	Ciudad string
	Dias   string
	Precio string
	Banner string
}

// FormFromPackage copies every field of p verbatim, including the ID.
func FormFromPackage(p models.Package) Form {
	return Form{
		ID:     p.ID.String(),
		Ciudad: p.Ciudad,
		Dias:   p.Dias.String(),
		Precio: p.Precio.String(),
		Banner: p.Banner,
	}
}

// IsNew reports whether saving the form creates a package.
func (f Form) IsNew() bool {
	return f.ID == ""
}

// Validate checks that ciudad, dias, precio and banner are present.
func (f Form) Validate() error {
	var missing []string
	for _, field := range []struct {
		name, value string
	}{
		{"ciudad", f.Ciudad},
		{"dias", f.Dias},
		{"precio", f.Precio},
		{"banner", f.Banner},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// Input returns the request body for the form.
func (f Form) Input() models.PackageInput {
	return models.PackageInput{
		Ciudad: f.Ciudad,
		Dias:   f.Dias,
		Precio: f.Precio,
		Banner: f.Banner,
	}
}

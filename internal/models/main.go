// Package models defines the core data structures for travel packages
// exchanged between the client and the API.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Package is a travel package ("paquete") as returned by the API.
type Package struct {
	// ID is the server-assigned identifier. Empty for items not yet created.
	ID Text `json:"id_paquete"`
	// Ciudad is the destination city.
	Ciudad string `json:"ciudad"`
	// Dias is the duration in days.
	Dias Text `json:"dias"`
	// Precio is the price of the package.
	Precio Text `json:"precio"`
	// Banner is the banner image URL.
	Banner string `json:"banner"`
}

// PackageInput is the request body for create and update calls.
// The identifier never travels in the body; it is part of the item URL.
type PackageInput struct {
	Ciudad string `json:"ciudad"`
	Dias   string `json:"dias"`
	Precio string `json:"precio"`
	Banner string `json:"banner"`
}

// MessageResponse is the body returned by every mutating endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// Text is a scalar kept in its textual form. It decodes from a JSON string
// or a JSON number, so "3" and 3 both become Text("3").
type Text string

// String returns the text form.
func (t Text) String() string { return string(t) }

// UnmarshalJSON accepts strings, numbers and null.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("text: unsupported JSON value %s", b)
	}
	*t = Text(n.String())
	return nil
}

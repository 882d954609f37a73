package transport

import (
	"net/url"
	"strings"
)

const collectionPath = "/api/paquetes/"

// Endpoints builds collection and item URLs for a base address.
type Endpoints struct {
	base string
}

// NewEndpoints returns Endpoints for base, e.g. "http://127.0.0.1:5000".
func NewEndpoints(base string) Endpoints {
	return Endpoints{base: strings.TrimRight(base, "/")}
}

// Collection is the URL used for list and create.
func (e Endpoints) Collection() string {
	return e.base + collectionPath
}

// Item is the URL used for read, update and delete of one package.
func (e Endpoints) Item(id string) string {
	return e.base + collectionPath + url.PathEscape(id)
}

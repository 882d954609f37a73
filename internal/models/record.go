package models

import "errors"

var (
	// ErrNotFound is returned when no package has the requested ID.
	ErrNotFound = errors.New("paquete not found")
	// ErrInvalidInput is returned when a package body fails validation.
	ErrInvalidInput = errors.New("invalid paquete")
)

// PackageRecord is the stored form of a package. It encodes to the same JSON
// keys as Package, with numeric dias and precio.
type PackageRecord struct {
	ID     int64   `json:"id_paquete"`
	Ciudad string  `json:"ciudad"`
	Dias   int     `json:"dias"`
	Precio float64 `json:"precio"`
	Banner string  `json:"banner"`
}

// RequestIDHeader carries the per-request correlation ID set by the client
// and logged by the server.
const RequestIDHeader = "X-Request-Id"

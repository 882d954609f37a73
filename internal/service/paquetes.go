// Package service provides the business logic for travel packages,
// delegating persistence to a repository interface.
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atinyakov/paquetes/internal/models"
)

// Messages returned to clients on successful mutations.
const (
	MsgCreated = "Paquete creado exitosamente"
	MsgUpdated = "Paquete actualizado exitosamente"
	MsgDeleted = "Paquete eliminado exitosamente"
)

// PackageRepository defines the persistence operations needed by the PackageService.
type PackageRepository interface {
	// List returns every stored package.
	List(ctx context.Context) ([]models.PackageRecord, error)
	// Get returns one package or models.ErrNotFound.
	Get(ctx context.Context, id int64) (*models.PackageRecord, error)
	// Create stores a new package and returns its ID.
	Create(ctx context.Context, p models.PackageRecord) (int64, error)
	// Update overwrites an existing package or returns models.ErrNotFound.
	Update(ctx context.Context, p models.PackageRecord) error
	// Delete removes a package or returns models.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

// PackageService implements package CRUD on top of a PackageRepository.
type PackageService struct {
	repo PackageRepository
}

// NewPackageService constructs a PackageService with the provided repository.
func NewPackageService(repo PackageRepository) *PackageService {
	return &PackageService{repo: repo}
}

// List returns all packages.
func (s *PackageService) List(ctx context.Context) ([]models.PackageRecord, error) {
	return s.repo.List(ctx)
}

// Get returns the package with the given ID.
func (s *PackageService) Get(ctx context.Context, id int64) (*models.PackageRecord, error) {
	return s.repo.Get(ctx, id)
}

// Create validates in, stores it and returns the confirmation message.
func (s *PackageService) Create(ctx context.Context, in models.PackageInput) (string, error) {
	rec, err := Parse(in)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.Create(ctx, rec); err != nil {
		return "", err
	}
	return MsgCreated, nil
}

// Update validates in and overwrites the package with the given ID.
func (s *PackageService) Update(ctx context.Context, id int64, in models.PackageInput) (string, error) {
	rec, err := Parse(in)
	if err != nil {
		return "", err
	}
	rec.ID = id
	if err := s.repo.Update(ctx, rec); err != nil {
		return "", err
	}
	return MsgUpdated, nil
}

// Delete removes the package with the given ID.
func (s *PackageService) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return MsgDeleted, nil
}

// Parse checks that every field is present and converts dias and precio to numbers.
func Parse(in models.PackageInput) (models.PackageRecord, error) {
	ciudad := strings.TrimSpace(in.Ciudad)
	banner := strings.TrimSpace(in.Banner)
	if ciudad == "" || banner == "" || strings.TrimSpace(in.Dias) == "" || strings.TrimSpace(in.Precio) == "" {
		return models.PackageRecord{}, fmt.Errorf("%w: all fields are required", models.ErrInvalidInput)
	}
	dias, err := strconv.Atoi(strings.TrimSpace(in.Dias))
	if err != nil {
		return models.PackageRecord{}, fmt.Errorf("%w: dias must be an integer", models.ErrInvalidInput)
	}
	precio, err := strconv.ParseFloat(strings.TrimSpace(in.Precio), 64)
	if err != nil {
		return models.PackageRecord{}, fmt.Errorf("%w: precio must be a number", models.ErrInvalidInput)
	}
	return models.PackageRecord{Ciudad: ciudad, Dias: dias, Precio: precio, Banner: banner}, nil
}

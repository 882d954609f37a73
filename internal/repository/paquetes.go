// Package repository provides PostgreSQL persistence for travel packages.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/paquetes/internal/models"
	"github.com/lib/pq"
)

// checkViolation is the PostgreSQL error code for a failed CHECK constraint.
const checkViolation = "23514"

// PostgresPackageRepository implements package CRUD against a PostgreSQL database.
type PostgresPackageRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresPackageRepository creates a repository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresPackageRepository(db *sql.DB) *PostgresPackageRepository {
	return &PostgresPackageRepository{DB: db}
}

// List returns every package ordered by ID.
func (r *PostgresPackageRepository) List(ctx context.Context) ([]models.PackageRecord, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_paquete, ciudad, dias, precio, banner FROM paquetes ORDER BY id_paquete
	`)
	if err != nil {
		return nil, fmt.Errorf("list paquetes: %w", err)
	}
	defer rows.Close()

	pkgs := make([]models.PackageRecord, 0)
	for rows.Next() {
		var p models.PackageRecord
		if err := rows.Scan(&p.ID, &p.Ciudad, &p.Dias, &p.Precio, &p.Banner); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list paquetes: %w", err)
	}
	return pkgs, nil
}

// Get fetches a single package. It returns models.ErrNotFound when the ID is unknown.
func (r *PostgresPackageRepository) Get(ctx context.Context, id int64) (*models.PackageRecord, error) {
	var p models.PackageRecord
	err := r.DB.QueryRowContext(ctx, `
		SELECT id_paquete, ciudad, dias, precio, banner FROM paquetes WHERE id_paquete = $1
	`, id).Scan(&p.ID, &p.Ciudad, &p.Dias, &p.Precio, &p.Banner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get paquete: %w", err)
	}
	return &p, nil
}

// Create inserts p and returns the assigned ID.
func (r *PostgresPackageRepository) Create(ctx context.Context, p models.PackageRecord) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO paquetes (ciudad, dias, precio, banner) VALUES ($1, $2, $3, $4) RETURNING id_paquete
	`, p.Ciudad, p.Dias, p.Precio, p.Banner).Scan(&id)
	if err != nil {
		return 0, wrap("create paquete", err)
	}
	return id, nil
}

// Update overwrites the package with p.ID. It returns models.ErrNotFound when no row matches.
func (r *PostgresPackageRepository) Update(ctx context.Context, p models.PackageRecord) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE paquetes SET ciudad = $1, dias = $2, precio = $3, banner = $4 WHERE id_paquete = $5
	`, p.Ciudad, p.Dias, p.Precio, p.Banner, p.ID)
	if err != nil {
		return wrap("update paquete", err)
	}
	return expectOne(res)
}

// Delete removes the package. It returns models.ErrNotFound when no row matches.
func (r *PostgresPackageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM paquetes WHERE id_paquete = $1`, id)
	if err != nil {
		return fmt.Errorf("delete paquete: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// wrap maps CHECK constraint failures to models.ErrInvalidInput.
func wrap(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == checkViolation {
		return fmt.Errorf("%s: %w: %s", op, models.ErrInvalidInput, pqErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

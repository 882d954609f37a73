package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atinyakov/paquetes/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (*PostgresPackageRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresPackageRepository(db), mock
}

var columns = []string{"id_paquete", "ciudad", "dias", "precio", "banner"}

func TestList_Success(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_paquete, ciudad, dias, precio, banner FROM paquetes ORDER BY id_paquete`)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Lima", 3, 100.0, "b.png").
			AddRow(int64(2), "Cusco", 2, 50.5, "x.png"))

	pkgs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.PackageRecord{
		{ID: 1, Ciudad: "Lima", Dias: 3, Precio: 100, Banner: "b.png"},
		{ID: 2, Ciudad: "Cusco", Dias: 2, Precio: 50.5, Banner: "x.png"},
	}, pkgs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM paquetes`)).WillReturnRows(sqlmock.NewRows(columns))

	pkgs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pkgs)
	assert.Empty(t, pkgs)
}

func TestList_Error(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM paquetes`)).WillReturnError(errors.New("query fail"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list paquetes")
}

func TestGet(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id_paquete = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), "Lima", 3, 100.0, "b.png"))

	p, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &models.PackageRecord{ID: 1, Ciudad: "Lima", Dias: 3, Precio: 100, Banner: "b.png"}, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id_paquete = $1`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Get(context.Background(), 9)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO paquetes (ciudad, dias, precio, banner) VALUES ($1, $2, $3, $4) RETURNING id_paquete`)).
		WithArgs("Cusco", 2, 50.0, "x.png").
		WillReturnRows(sqlmock.NewRows([]string{"id_paquete"}).AddRow(int64(4)))

	id, err := repo.Create(context.Background(), models.PackageRecord{Ciudad: "Cusco", Dias: 2, Precio: 50, Banner: "x.png"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_CheckViolation(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO paquetes`)).
		WillReturnError(&pq.Error{Code: checkViolation, Message: "dias must be positive"})

	_, err := repo.Create(context.Background(), models.PackageRecord{Ciudad: "Cusco", Dias: -1, Precio: 50, Banner: "x.png"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Contains(t, err.Error(), "dias must be positive")
}

func TestUpdate(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE paquetes SET ciudad = $1, dias = $2, precio = $3, banner = $4 WHERE id_paquete = $5`)).
		WithArgs("Cusco", 2, 50.0, "x.png", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), models.PackageRecord{ID: 5, Ciudad: "Cusco", Dias: 2, Precio: 50, Banner: "x.png"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE paquetes`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), models.PackageRecord{ID: 5, Ciudad: "Cusco", Dias: 2, Precio: 50, Banner: "x.png"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM paquetes WHERE id_paquete = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM paquetes`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), models.ErrNotFound)
}

func TestDelete_Error(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM paquetes`)).
		WillReturnError(errors.New("db down"))

	err := repo.Delete(context.Background(), 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

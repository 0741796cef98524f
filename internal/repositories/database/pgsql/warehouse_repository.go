package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	"github.com/hisaabi/hisaabi_backend/internal/models"
	"github.com/hisaabi/hisaabi_backend/internal/utils/mapping"
)

const warehouseColumns = `
	warehouse_slug, business_slug, title, address, status_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxWarehouseRepository struct {
	BaseRepository
}

func newPgxWarehouseRepository(pool *pgxpool.Pool) portsrepo.WarehouseRepositoryFacade {
	return &PgxWarehouseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WarehouseRepositoryFacade = (*PgxWarehouseRepository)(nil)

func scanWarehouse(row pgx.Row) (models.Warehouse, error) {
	var m models.Warehouse
	err := row.Scan(
		&m.WarehouseSlug, &m.BusinessSlug, &m.Title, &m.Address, &m.StatusID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindWarehouseBySlug retrieves a specific warehouse by its slug.
func (r *PgxWarehouseRepository) FindWarehouseBySlug(ctx context.Context, businessSlug, warehouseSlug string) (*domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE business_slug = $1 AND warehouse_slug = $2 AND status_id != $3;`
	m, err := scanWarehouse(r.Pool.QueryRow(ctx, query, businessSlug, warehouseSlug, int(domain.StatusDeleted)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find warehouse "+warehouseSlug, err)
	}
	warehouse := mapping.ToDomainWarehouse(m)
	return &warehouse, nil
}

// ListWarehouses retrieves all active warehouses for a business.
func (r *PgxWarehouseRepository) ListWarehouses(ctx context.Context, businessSlug string) ([]domain.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE business_slug = $1 AND status_id != $2
		ORDER BY title, warehouse_slug;`
	rows, err := r.Pool.Query(ctx, query, businessSlug, int(domain.StatusDeleted))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query warehouses", err)
	}
	defer rows.Close()

	warehouses := []domain.Warehouse{}
	for rows.Next() {
		m, err := scanWarehouse(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan warehouse row", err)
		}
		warehouses = append(warehouses, mapping.ToDomainWarehouse(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating warehouse rows", err)
	}
	return warehouses, nil
}

// SaveWarehouse persists a new warehouse.
func (r *PgxWarehouseRepository) SaveWarehouse(ctx context.Context, warehouse domain.Warehouse) error {
	m := mapping.ToModelWarehouse(warehouse)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO warehouses (`+warehouseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.WarehouseSlug, m.BusinessSlug, m.Title, m.Address, m.StatusID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save warehouse "+m.WarehouseSlug, err)
	}
	return nil
}

// UpdateWarehouse updates warehouse details.
func (r *PgxWarehouseRepository) UpdateWarehouse(ctx context.Context, warehouse domain.Warehouse) error {
	m := mapping.ToModelWarehouse(warehouse)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE warehouses
		SET title = $1, address = $2, last_updated_at = $3, last_updated_by = $4
		WHERE business_slug = $5 AND warehouse_slug = $6 AND status_id != $7;`,
		m.Title, m.Address, m.LastUpdatedAt, m.LastUpdatedBy,
		m.BusinessSlug, m.WarehouseSlug, int(domain.StatusDeleted),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update warehouse "+m.WarehouseSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkWarehouseDeleted soft-deletes a warehouse.
func (r *PgxWarehouseRepository) MarkWarehouseDeleted(ctx context.Context, businessSlug, warehouseSlug, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE warehouses SET status_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE business_slug = $4 AND warehouse_slug = $5 AND status_id != $1;`,
		int(domain.StatusDeleted), time.Now().UTC(), updatedBy, businessSlug, warehouseSlug,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark warehouse deleted "+warehouseSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

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

const categoryColumns = `
	category_slug, business_slug, title, category_type, status_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategorySlug, &m.BusinessSlug, &m.Title, &m.CategoryType, &m.StatusID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindCategoryBySlug retrieves a specific category by its slug.
func (r *PgxCategoryRepository) FindCategoryBySlug(ctx context.Context, businessSlug, categorySlug string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE business_slug = $1 AND category_slug = $2 AND status_id != $3;`
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, businessSlug, categorySlug, int(domain.StatusDeleted)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category "+categorySlug, err)
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

// ListCategories retrieves categories for a business, optionally filtered by type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, businessSlug string, categoryType *domain.CategoryType) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + `
		FROM categories
		WHERE business_slug = $1 AND status_id != $2`
	args := []interface{}{businessSlug, int(domain.StatusDeleted)}

	if categoryType != nil {
		args = append(args, int(*categoryType))
		query += ` AND category_type = $3`
	}

	query += `
		ORDER BY title, category_slug;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}

// SaveCategory persists a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.CategorySlug, m.BusinessSlug, m.Title, m.CategoryType, m.StatusID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save category "+m.CategorySlug, err)
	}
	return nil
}

// UpdateCategory updates category details.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE categories
		SET title = $1, last_updated_at = $2, last_updated_by = $3
		WHERE business_slug = $4 AND category_slug = $5 AND status_id != $6;`,
		m.Title, m.LastUpdatedAt, m.LastUpdatedBy,
		m.BusinessSlug, m.CategorySlug, int(domain.StatusDeleted),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category "+m.CategorySlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkCategoryDeleted soft-deletes a category.
func (r *PgxCategoryRepository) MarkCategoryDeleted(ctx context.Context, businessSlug, categorySlug, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE categories SET status_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE business_slug = $4 AND category_slug = $5 AND status_id != $1;`,
		int(domain.StatusDeleted), time.Now().UTC(), updatedBy, businessSlug, categorySlug,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark category deleted "+categorySlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

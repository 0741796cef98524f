package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	"github.com/hisaabi/hisaabi_backend/internal/models"
	"github.com/hisaabi/hisaabi_backend/internal/utils/mapping"
)

const productColumns = `
	product_slug, business_slug, name, description, category_slug,
	retail_price, wholesale_price, purchase_price, quantity, status_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductSlug, &m.BusinessSlug, &m.Name, &m.Description, &m.CategorySlug,
		&m.RetailPrice, &m.WholesalePrice, &m.PurchasePrice, &m.Quantity, &m.StatusID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindProductBySlug retrieves a specific product by its slug.
func (r *PgxProductRepository) FindProductBySlug(ctx context.Context, businessSlug, productSlug string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE business_slug = $1 AND product_slug = $2 AND status_id != $3;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, businessSlug, productSlug, int(domain.StatusDeleted)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product "+productSlug, err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// ListProducts retrieves products for a business, optionally filtered by category.
func (r *PgxProductRepository) ListProducts(ctx context.Context, businessSlug string, categorySlug *string, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE business_slug = $1 AND status_id != $2`
	args := []interface{}{businessSlug, int(domain.StatusDeleted)}

	if categorySlug != nil && *categorySlug != "" {
		args = append(args, *categorySlug)
		query += ` AND category_slug = $` + strconv.Itoa(len(args))
	}

	args = append(args, limit, offset)
	query += `
		ORDER BY name, product_slug
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, mapping.ToDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return products, nil
}

// SaveProduct persists a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		m.ProductSlug, m.BusinessSlug, m.Name, m.Description, m.CategorySlug,
		m.RetailPrice, m.WholesalePrice, m.PurchasePrice, m.Quantity, m.StatusID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save product "+m.ProductSlug, err)
	}
	return nil
}

// UpdateProduct updates product details. Quantity is adjusted separately.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, category_slug = $3,
		    retail_price = $4, wholesale_price = $5, purchase_price = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE business_slug = $9 AND product_slug = $10 AND status_id != $11;`,
		m.Name, m.Description, m.CategorySlug,
		m.RetailPrice, m.WholesalePrice, m.PurchasePrice,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.BusinessSlug, m.ProductSlug, int(domain.StatusDeleted),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update product "+m.ProductSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustProductQuantity applies a delta to the product's stock quantity.
func (r *PgxProductRepository) AdjustProductQuantity(ctx context.Context, businessSlug, productSlug string, delta decimal.Decimal) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE products SET quantity = quantity + $1, last_updated_at = $2
		WHERE business_slug = $3 AND product_slug = $4 AND status_id != $5;`,
		delta, time.Now().UTC(), businessSlug, productSlug, int(domain.StatusDeleted),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust quantity for product "+productSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkProductDeleted soft-deletes a product.
func (r *PgxProductRepository) MarkProductDeleted(ctx context.Context, businessSlug, productSlug, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE products SET status_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE business_slug = $4 AND product_slug = $5 AND status_id != $1;`,
		int(domain.StatusDeleted), time.Now().UTC(), updatedBy, businessSlug, productSlug,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark product deleted "+productSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

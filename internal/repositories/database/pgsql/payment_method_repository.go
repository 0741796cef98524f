package pgsql

import (
	"context"
	"errors"
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

const paymentMethodColumns = `
	payment_method_slug, business_slug, title, description, balance, status_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentMethodRepository struct {
	BaseRepository
}

func newPgxPaymentMethodRepository(pool *pgxpool.Pool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

func scanPaymentMethod(row pgx.Row) (models.PaymentMethod, error) {
	var m models.PaymentMethod
	err := row.Scan(
		&m.PaymentMethodSlug, &m.BusinessSlug, &m.Title, &m.Description, &m.Balance, &m.StatusID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindPaymentMethodBySlug retrieves a specific payment method by its slug.
func (r *PgxPaymentMethodRepository) FindPaymentMethodBySlug(ctx context.Context, businessSlug, paymentMethodSlug string) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + `
		FROM payment_methods
		WHERE business_slug = $1 AND payment_method_slug = $2 AND status_id != $3;`
	m, err := scanPaymentMethod(r.Pool.QueryRow(ctx, query, businessSlug, paymentMethodSlug, int(domain.StatusDeleted)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment method "+paymentMethodSlug, err)
	}
	pm := mapping.ToDomainPaymentMethod(m)
	return &pm, nil
}

// ListPaymentMethods retrieves all active payment methods for a business.
func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context, businessSlug string) ([]domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + `
		FROM payment_methods
		WHERE business_slug = $1 AND status_id != $2
		ORDER BY title, payment_method_slug;`
	rows, err := r.Pool.Query(ctx, query, businessSlug, int(domain.StatusDeleted))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment methods", err)
	}
	defer rows.Close()

	methods := []domain.PaymentMethod{}
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment method row", err)
		}
		methods = append(methods, mapping.ToDomainPaymentMethod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment method rows", err)
	}
	return methods, nil
}

// SavePaymentMethod persists a new payment method.
func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(pm)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO payment_methods (`+paymentMethodColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.PaymentMethodSlug, m.BusinessSlug, m.Title, m.Description, m.Balance, m.StatusID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save payment method "+m.PaymentMethodSlug, err)
	}
	return nil
}

// UpdatePaymentMethod updates payment method details. Balance is adjusted separately.
func (r *PgxPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(pm)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE payment_methods
		SET title = $1, description = $2, last_updated_at = $3, last_updated_by = $4
		WHERE business_slug = $5 AND payment_method_slug = $6 AND status_id != $7;`,
		m.Title, m.Description, m.LastUpdatedAt, m.LastUpdatedBy,
		m.BusinessSlug, m.PaymentMethodSlug, int(domain.StatusDeleted),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment method "+m.PaymentMethodSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustPaymentMethodBalance applies a delta to the payment method's balance.
func (r *PgxPaymentMethodRepository) AdjustPaymentMethodBalance(ctx context.Context, businessSlug, paymentMethodSlug string, delta decimal.Decimal) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE payment_methods SET balance = balance + $1, last_updated_at = $2
		WHERE business_slug = $3 AND payment_method_slug = $4 AND status_id != $5;`,
		delta, time.Now().UTC(), businessSlug, paymentMethodSlug, int(domain.StatusDeleted),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust balance for payment method "+paymentMethodSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkPaymentMethodDeleted soft-deletes a payment method.
func (r *PgxPaymentMethodRepository) MarkPaymentMethodDeleted(ctx context.Context, businessSlug, paymentMethodSlug, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE payment_methods SET status_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE business_slug = $4 AND payment_method_slug = $5 AND status_id != $1;`,
		int(domain.StatusDeleted), time.Now().UTC(), updatedBy, businessSlug, paymentMethodSlug,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark payment method deleted "+paymentMethodSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

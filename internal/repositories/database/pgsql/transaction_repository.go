package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	"github.com/hisaabi/hisaabi_backend/internal/models"
	"github.com/hisaabi/hisaabi_backend/internal/utils/mapping"
	"github.com/hisaabi/hisaabi_backend/internal/utils/pagination"
)

const transactionColumns = `
	transaction_slug, business_slug, parent_slug, transaction_type, party_slug,
	payment_method_from_slug, payment_method_to_slug, warehouse_from_slug, warehouse_to_slug,
	flat_discount, discount_type_id, flat_tax, tax_type_id, additional_charges,
	total_bill, total_paid, timestamp, description, state_id, status_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionSlug,
		&m.BusinessSlug,
		&m.ParentSlug,
		&m.TransactionType,
		&m.PartySlug,
		&m.PaymentMethodFromSlug,
		&m.PaymentMethodToSlug,
		&m.WarehouseFromSlug,
		&m.WarehouseToSlug,
		&m.FlatDiscount,
		&m.DiscountTypeID,
		&m.FlatTax,
		&m.TaxTypeID,
		&m.AdditionalCharges,
		&m.TotalBill,
		&m.TotalPaid,
		&m.Timestamp,
		&m.Description,
		&m.StateID,
		&m.StatusID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// queueInsert adds the transaction row and its detail rows to the batch.
func queueInsert(batch *pgx.Batch, txn domain.Transaction) {
	m := mapping.ToModelTransaction(txn)
	batch.Queue(`
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);`,
		m.TransactionSlug, m.BusinessSlug, m.ParentSlug, m.TransactionType, m.PartySlug,
		m.PaymentMethodFromSlug, m.PaymentMethodToSlug, m.WarehouseFromSlug, m.WarehouseToSlug,
		m.FlatDiscount, m.DiscountTypeID, m.FlatTax, m.TaxTypeID, m.AdditionalCharges,
		m.TotalBill, m.TotalPaid, m.Timestamp, m.Description, m.StateID, m.StatusID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	for _, li := range txn.LineItems {
		d := mapping.ToModelTransactionDetail(txn.BusinessSlug, li)
		batch.Queue(`
			INSERT INTO transaction_details (
				detail_slug, transaction_slug, business_slug, product_slug, quantity, price,
				flat_discount, discount_type_id, flat_tax, tax_type_id, description,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
			d.DetailSlug, d.TransactionSlug, d.BusinessSlug, d.ProductSlug, d.Quantity, d.Price,
			d.FlatDiscount, d.DiscountTypeID, d.FlatTax, d.TaxTypeID, d.Description,
			d.CreatedAt, d.CreatedBy, d.LastUpdatedAt, d.LastUpdatedBy,
		)
	}
}

// applyBalanceChanges locks and updates party and payment method balances
// within the given database transaction. Locks are taken in one statement per
// table so two concurrent saves block on the rows rather than deadlocking on
// interleaved single-row locks.
func applyBalanceChanges(ctx context.Context, tx pgx.Tx, businessSlug string, partyChanges map[string]decimal.Decimal, cashChanges map[string]decimal.Decimal, updatedBy string, now time.Time) error {
	if len(partyChanges) > 0 {
		slugsList := make([]string, 0, len(partyChanges))
		for slug := range partyChanges {
			slugsList = append(slugsList, slug)
		}
		rows, err := tx.Query(ctx, `SELECT party_slug FROM parties WHERE business_slug = $1 AND party_slug = ANY($2) FOR UPDATE;`, businessSlug, slugsList)
		if err != nil {
			return apperrors.NewAppError(500, "failed to lock parties for update", err)
		}
		locked := 0
		for rows.Next() {
			locked++
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return apperrors.NewAppError(500, "failed to lock parties for update", err)
		}
		if locked != len(slugsList) {
			return apperrors.ErrNotFound
		}
		for slug, delta := range partyChanges {
			if _, err := tx.Exec(ctx, `
				UPDATE parties SET balance = balance + $1, last_updated_at = $2, last_updated_by = $3
				WHERE business_slug = $4 AND party_slug = $5;`,
				delta, now, updatedBy, businessSlug, slug); err != nil {
				return apperrors.NewAppError(500, "failed to update balance for party "+slug, err)
			}
		}
	}

	if len(cashChanges) > 0 {
		slugsList := make([]string, 0, len(cashChanges))
		for slug := range cashChanges {
			slugsList = append(slugsList, slug)
		}
		rows, err := tx.Query(ctx, `SELECT payment_method_slug FROM payment_methods WHERE business_slug = $1 AND payment_method_slug = ANY($2) FOR UPDATE;`, businessSlug, slugsList)
		if err != nil {
			return apperrors.NewAppError(500, "failed to lock payment methods for update", err)
		}
		locked := 0
		for rows.Next() {
			locked++
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return apperrors.NewAppError(500, "failed to lock payment methods for update", err)
		}
		if locked != len(slugsList) {
			return apperrors.ErrNotFound
		}
		for slug, delta := range cashChanges {
			if _, err := tx.Exec(ctx, `
				UPDATE payment_methods SET balance = balance + $1, last_updated_at = $2, last_updated_by = $3
				WHERE business_slug = $4 AND payment_method_slug = $5;`,
				delta, now, updatedBy, businessSlug, slug); err != nil {
				return apperrors.NewAppError(500, "failed to update balance for payment method "+slug, err)
			}
		}
	}

	return nil
}

// SaveTransaction persists a transaction with its line items and applies the
// balance changes within one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, partyBalanceChange decimal.Decimal, cashChanges map[string]decimal.Decimal) error {
	partyChanges := map[string]decimal.Decimal{}
	if txn.PartySlug != nil && !partyBalanceChange.IsZero() {
		partyChanges[*txn.PartySlug] = partyBalanceChange
	}
	return r.saveTree(ctx, txn, nil, partyChanges, cashChanges)
}

// SaveTransactionTree persists a parent and its children atomically.
func (r *PgxTransactionRepository) SaveTransactionTree(ctx context.Context, parent domain.Transaction, children []domain.Transaction, partyBalanceChanges map[string]decimal.Decimal, cashChanges map[string]decimal.Decimal) error {
	return r.saveTree(ctx, parent, children, partyBalanceChanges, cashChanges)
}

func (r *PgxTransactionRepository) saveTree(ctx context.Context, parent domain.Transaction, children []domain.Transaction, partyChanges map[string]decimal.Decimal, cashChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	queueInsert(batch, parent)
	for _, child := range children {
		queueInsert(batch, child)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+parent.TransactionSlug, err)
	}

	if err := applyBalanceChanges(ctx, tx, parent.BusinessSlug, partyChanges, cashChanges, parent.CreatedBy, parent.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionBySlug retrieves a transaction and its line items.
func (r *PgxTransactionRepository) FindTransactionBySlug(ctx context.Context, businessSlug, transactionSlug string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_slug = $1 AND transaction_slug = $2 AND status_id != $3;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, businessSlug, transactionSlug, int(domain.StatusDeleted)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionSlug, err)
	}

	txn := mapping.ToDomainTransaction(m)
	items, err := r.findLineItems(ctx, businessSlug, transactionSlug)
	if err != nil {
		return nil, err
	}
	txn.LineItems = items
	return &txn, nil
}

func (r *PgxTransactionRepository) findLineItems(ctx context.Context, businessSlug, transactionSlug string) ([]domain.LineItem, error) {
	query := `
		SELECT detail_slug, transaction_slug, business_slug, product_slug, quantity, price,
		       flat_discount, discount_type_id, flat_tax, tax_type_id, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transaction_details
		WHERE business_slug = $1 AND transaction_slug = $2
		ORDER BY created_at, detail_slug;`
	rows, err := r.Pool.Query(ctx, query, businessSlug, transactionSlug)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for "+transactionSlug, err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var d models.TransactionDetail
		if err := rows.Scan(
			&d.DetailSlug, &d.TransactionSlug, &d.BusinessSlug, &d.ProductSlug, &d.Quantity, &d.Price,
			&d.FlatDiscount, &d.DiscountTypeID, &d.FlatTax, &d.TaxTypeID, &d.Description,
			&d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row", err)
		}
		items = append(items, mapping.ToDomainLineItem(d))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows", err)
	}
	return items, nil
}

// FindChildTransactions retrieves all active children of a parent, ordered by timestamp.
func (r *PgxTransactionRepository) FindChildTransactions(ctx context.Context, businessSlug, parentSlug string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_slug = $1 AND parent_slug = $2 AND status_id != $3
		ORDER BY timestamp, transaction_slug;`
	rows, err := r.Pool.Query(ctx, query, businessSlug, parentSlug, int(domain.StatusDeleted))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query children of "+parentSlug, err)
	}
	defer rows.Close()

	children := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		children = append(children, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return children, nil
}

// ListTransactions retrieves a page of top-level transactions, newest first.
// Children of journal vouchers are not listed; they are fetched through
// their parent.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, businessSlug string, limit int, nextToken *string, types []domain.TransactionType) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_slug = $1 AND parent_slug IS NULL AND status_id != $2`
	args := []interface{}{businessSlug, int(domain.StatusDeleted)}

	if len(types) > 0 {
		typeIDs := make([]int, len(types))
		for i, t := range types {
			typeIDs[i] = int(t)
		}
		args = append(args, typeIDs)
		baseQuery += ` AND transaction_type = ANY($` + strconv.Itoa(len(args)) + `)`
	}

	if nextToken != nil && *nextToken != "" {
		lastTimestamp, lastSlug, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastTimestamp, lastSlug)
		baseQuery += ` AND (timestamp, transaction_slug) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + `
		ORDER BY timestamp DESC, transaction_slug DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	return r.listPage(ctx, query, args, limit)
}

// ListTransactionsByParty retrieves a page of transactions involving a party,
// oldest first, for balance history projection. Both top-level transactions
// and journal voucher children count; parent vouchers never carry a party.
func (r *PgxTransactionRepository) ListTransactionsByParty(ctx context.Context, businessSlug, partySlug string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_slug = $1 AND party_slug = $2 AND status_id != $3`
	args := []interface{}{businessSlug, partySlug, int(domain.StatusDeleted)}

	if nextToken != nil && *nextToken != "" {
		lastTimestamp, lastSlug, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastTimestamp, lastSlug)
		baseQuery += ` AND (timestamp, transaction_slug) > ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + `
		ORDER BY timestamp ASC, transaction_slug ASC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	return r.listPage(ctx, query, args, limit)
}

// listPage runs a cursor query that fetched limit+1 rows and trims the extra
// row into the next-page token.
func (r *PgxTransactionRepository) listPage(ctx context.Context, query string, args []interface{}, limit int) ([]domain.Transaction, *string, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	results := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		results = append(results, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextToken *string
	if len(results) > limit {
		results = results[:limit]
		last := results[len(results)-1]
		token := pagination.EncodeToken(last.Timestamp, last.TransactionSlug)
		nextToken = &token
	}

	return results, nextToken, nil
}

// MarkTransactionDeleted soft-deletes a transaction and its children and
// reverses the balance changes they applied, all within one database
// transaction.
func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, businessSlug, transactionSlug string, partyBalanceChanges map[string]decimal.Decimal, cashChanges map[string]decimal.Decimal, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()
	tag, err := tx.Exec(ctx, `
		UPDATE transactions SET status_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE business_slug = $4 AND (transaction_slug = $5 OR parent_slug = $5) AND status_id != $1;`,
		int(domain.StatusDeleted), now, updatedBy, businessSlug, transactionSlug)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark transaction deleted "+transactionSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyBalanceChanges(ctx, tx, businessSlug, partyBalanceChanges, cashChanges, updatedBy, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

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

const partyColumns = `
	party_slug, business_slug, name, phone, address, email, description,
	role_id, opening_balance, balance, status_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartySlug, &m.BusinessSlug, &m.Name, &m.Phone, &m.Address, &m.Email, &m.Description,
		&m.RoleID, &m.OpeningBalance, &m.Balance, &m.StatusID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindPartyBySlug retrieves a specific party by its slug.
func (r *PgxPartyRepository) FindPartyBySlug(ctx context.Context, businessSlug, partySlug string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + `
		FROM parties
		WHERE business_slug = $1 AND party_slug = $2 AND status_id != $3;`
	m, err := scanParty(r.Pool.QueryRow(ctx, query, businessSlug, partySlug, int(domain.StatusDeleted)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party "+partySlug, err)
	}
	party := mapping.ToDomainParty(m)
	return &party, nil
}

// ListParties retrieves parties for a business, optionally filtered by role.
func (r *PgxPartyRepository) ListParties(ctx context.Context, businessSlug string, roles []domain.PartyRole, limit int, offset int) ([]domain.Party, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + partyColumns + `
		FROM parties
		WHERE business_slug = $1 AND status_id != $2`
	args := []interface{}{businessSlug, int(domain.StatusDeleted)}

	if len(roles) > 0 {
		roleIDs := make([]int, len(roles))
		for i, role := range roles {
			roleIDs[i] = int(role)
		}
		args = append(args, roleIDs)
		query += ` AND role_id = ANY($` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, limit, offset)
	query += `
		ORDER BY name, party_slug
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query parties", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row", err)
		}
		parties = append(parties, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows", err)
	}
	return mapping.ToDomainPartySlice(parties), nil
}

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO parties (`+partyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
		m.PartySlug, m.BusinessSlug, m.Name, m.Phone, m.Address, m.Email, m.Description,
		m.RoleID, m.OpeningBalance, m.Balance, m.StatusID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save party "+m.PartySlug, err)
	}
	return nil
}

// UpdateParty updates party details. Balance is adjusted separately.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE parties
		SET name = $1, phone = $2, address = $3, email = $4, description = $5, role_id = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE business_slug = $9 AND party_slug = $10 AND status_id != $11;`,
		m.Name, m.Phone, m.Address, m.Email, m.Description, m.RoleID,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.BusinessSlug, m.PartySlug, int(domain.StatusDeleted),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update party "+m.PartySlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustPartyBalance applies a delta to the party's running balance.
func (r *PgxPartyRepository) AdjustPartyBalance(ctx context.Context, businessSlug, partySlug string, delta decimal.Decimal) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE parties SET balance = balance + $1, last_updated_at = $2
		WHERE business_slug = $3 AND party_slug = $4 AND status_id != $5;`,
		delta, time.Now().UTC(), businessSlug, partySlug, int(domain.StatusDeleted),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust balance for party "+partySlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkPartyDeleted soft-deletes a party.
func (r *PgxPartyRepository) MarkPartyDeleted(ctx context.Context, businessSlug, partySlug, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE parties SET status_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE business_slug = $4 AND party_slug = $5 AND status_id != $1;`,
		int(domain.StatusDeleted), time.Now().UTC(), updatedBy, businessSlug, partySlug,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark party deleted "+partySlug, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

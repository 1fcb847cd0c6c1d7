package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	portsrepo "github.com/julofinance/lender-ledger/internal/core/ports/repositories"
	"github.com/julofinance/lender-ledger/internal/models"
	"github.com/julofinance/lender-ledger/internal/utils/mapping"
)

// PgxRateRepository persists lender service rates. Only one rate row per
// partner is effective at a time; saving a new one retires the previous.
type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for rate data.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepository {
	return &PgxRateRepository{BaseRepository{Pool: pool}}
}

// SaveRate persists a new rate configuration, retiring the previous effective
// one in the same transaction.
func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.LenderServiceRate) error {
	m := mapping.ToModelRate(rate)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	retire := `UPDATE lender_service_rates SET is_effective = FALSE WHERE partner_id = $1 AND is_effective;`
	if _, err := tx.Exec(ctx, retire, m.PartnerID); err != nil {
		return fmt.Errorf("failed to retire previous rate for partner %s: %w", m.PartnerID, err)
	}

	insert := `
		INSERT INTO lender_service_rates (rate_id, partner_id, provision_rate, principal_rate, interest_rate, late_fee_rate, is_effective, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insert,
		m.RateID, m.PartnerID, m.ProvisionRate, m.PrincipalRate, m.InterestRate, m.LateFeeRate,
		m.IsEffective, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate %s: %w", m.RateID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEffectiveRateByPartnerID retrieves the rate currently in effect.
func (r *PgxRateRepository) FindEffectiveRateByPartnerID(ctx context.Context, partnerID string) (*domain.LenderServiceRate, error) {
	query := `
		SELECT rate_id, partner_id, provision_rate, principal_rate, interest_rate, late_fee_rate, is_effective, created_at, created_by, last_updated_at, last_updated_by
		FROM lender_service_rates
		WHERE partner_id = $1 AND is_effective;
	`
	var m models.LenderServiceRate
	err := r.Pool.QueryRow(ctx, query, partnerID).Scan(
		&m.RateID, &m.PartnerID, &m.ProvisionRate, &m.PrincipalRate, &m.InterestRate, &m.LateFeeRate,
		&m.IsEffective, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan rate: %w", err)
	}
	rate := mapping.ToDomainRate(m)
	return &rate, nil
}

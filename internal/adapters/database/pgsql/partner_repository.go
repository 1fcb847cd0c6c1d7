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

// PgxPartnerRepository persists platform partners.
type PgxPartnerRepository struct {
	BaseRepository
}

// newPgxPartnerRepository creates a new repository for partner data.
func newPgxPartnerRepository(pool *pgxpool.Pool) portsrepo.PartnerRepository {
	return &PgxPartnerRepository{BaseRepository{Pool: pool}}
}

// SavePartner persists a new partner.
func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)
	query := `
		INSERT INTO partners (partner_id, name, type, email, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartnerID, m.Name, m.Type, m.Email, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert partner %s: %w", m.PartnerID, err)
	}
	return nil
}

// FindPartnerByID retrieves a partner by its unique identifier.
func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	query := `
		SELECT partner_id, name, type, email, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM partners WHERE partner_id = $1;
	`
	var m models.Partner
	err := r.Pool.QueryRow(ctx, query, partnerID).Scan(
		&m.PartnerID, &m.Name, &m.Type, &m.Email, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan partner: %w", err)
	}
	partner := mapping.ToDomainPartner(m)
	return &partner, nil
}

// UpdatePartner updates a partner's mutable fields.
func (r *PgxPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)
	query := `
		UPDATE partners
		SET name = $2, type = $3, email = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE partner_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PartnerID, m.Name, m.Type, m.Email, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner %s: %w", m.PartnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

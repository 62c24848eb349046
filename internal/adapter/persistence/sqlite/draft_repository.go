package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

// DraftRepository stores drafts in the drafts table.
type DraftRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ interfaces.IDraftRepository = (*DraftRepository)(nil)

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db, now: time.Now}
}

// Upsert replaces the draft unless it has already been submitted, in which
// case ErrDraftConsumed is returned and the row is left untouched.
func (r *DraftRepository) Upsert(ctx context.Context, d entities.Draft) (entities.Draft, error) {
	now := r.now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
	if d.Status == "" {
		d.Status = entities.DraftStatusDraft
	}

	row, err := toDraftRow(d)
	if err != nil {
		return entities.Draft{}, err
	}

	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO drafts (
			token, template_id, client, terms, selections, discount,
			status, agreement_id, created_at, updated_at
		) VALUES (
			:token, :template_id, :client, :terms, :selections, :discount,
			:status, :agreement_id, :created_at, :updated_at
		)
		ON CONFLICT(token) DO UPDATE SET
			template_id  = excluded.template_id,
			client       = excluded.client,
			terms        = excluded.terms,
			selections   = excluded.selections,
			discount     = excluded.discount,
			status       = excluded.status,
			agreement_id = excluded.agreement_id,
			updated_at   = excluded.updated_at
		WHERE drafts.status = 'draft'`, row)
	if err != nil {
		return entities.Draft{}, fmt.Errorf("upserting draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Draft{}, fmt.Errorf("upserting draft: %w", err)
	}
	if n == 0 {
		return entities.Draft{}, interfaces.ErrDraftConsumed
	}
	return d, nil
}

func (r *DraftRepository) GetByToken(ctx context.Context, token string) (entities.Draft, error) {
	var row draftRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM drafts WHERE token = ?", token)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Draft{}, nil
	}
	if err != nil {
		return entities.Draft{}, fmt.Errorf("getting draft: %w", err)
	}
	return row.toEntity()
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

const agreementColumns = `
	id, contract_reference, template_id, client_name, client_email, client, terms,
	end_date, renewal_date, services_included, quote, terms_accepted,
	client_signature, company_signature, status, draft_token,
	email_sent_at, email_sent_to, reminder_sent_at, created_at, updated_at`

// AgreementRepository stores agreements and their line items. Create runs in
// a single transaction together with the draft supersession.
type AgreementRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ interfaces.IAgreementRepository = (*AgreementRepository)(nil)

func NewAgreementRepository(db *sqlx.DB) *AgreementRepository {
	return &AgreementRepository{db: db, now: time.Now}
}

func (r *AgreementRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	row, err := toAgreementRow(a)
	if err != nil {
		return entities.Agreement{}, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if a.DraftToken != "" {
		res, err := tx.ExecContext(ctx, `
			UPDATE drafts SET status = ?, agreement_id = ?, updated_at = ?
			WHERE token = ? AND status = ?`,
			string(entities.DraftStatusSubmitted), a.ID, formatTime(a.CreatedAt),
			a.DraftToken, string(entities.DraftStatusDraft),
		)
		if err != nil {
			return entities.Agreement{}, fmt.Errorf("superseding draft: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return entities.Agreement{}, fmt.Errorf("superseding draft: %w", err)
		} else if n == 0 {
			return entities.Agreement{}, interfaces.ErrDraftConsumed
		}
	}

	_, err = tx.NamedExecContext(ctx, `INSERT INTO agreements (`+agreementColumns+`) VALUES (
		:id, :contract_reference, :template_id, :client_name, :client_email, :client, :terms,
		:end_date, :renewal_date, :services_included, :quote, :terms_accepted,
		:client_signature, :company_signature, :status, :draft_token,
		:email_sent_at, :email_sent_to, :reminder_sent_at, :created_at, :updated_at)`, row)
	if err != nil {
		if isUniqueViolation(err, "agreements.contract_reference") {
			return entities.Agreement{}, interfaces.ErrDuplicateReference
		}
		return entities.Agreement{}, fmt.Errorf("inserting agreement: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO agreement_lines (
			agreement_id, position, service_id, category_id, name,
			frequency, visits, unit_price, annualized_cost
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("preparing line insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range a.Quote.LineItems {
		_, err := stmt.ExecContext(ctx,
			a.ID, i, l.ServiceID, l.CategoryID, l.Name,
			l.Frequency, l.Visits, nullDecimal(l.UnitPrice), nullDecimal(l.AnnualizedCost),
		)
		if err != nil {
			return entities.Agreement{}, fmt.Errorf("inserting line %s: %w", l.ServiceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.Agreement{}, fmt.Errorf("committing agreement: %w", err)
	}
	return a, nil
}

func isUniqueViolation(err error, column string) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

// GetByID loads the agreement with its line items read back from
// agreement_lines.
func (r *AgreementRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	var row agreementRow
	err := r.db.GetContext(ctx, &row, "SELECT "+agreementColumns+" FROM agreements WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Agreement{}, nil
	}
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("getting agreement %s: %w", id, err)
	}
	a, err := row.toEntity()
	if err != nil {
		return entities.Agreement{}, err
	}

	var lines []lineRow
	err = r.db.SelectContext(ctx, &lines,
		"SELECT * FROM agreement_lines WHERE agreement_id = ? ORDER BY position", id)
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("getting lines for %s: %w", id, err)
	}
	if len(lines) > 0 {
		items := make([]entities.LineItem, len(lines))
		for i, l := range lines {
			items[i] = l.toEntity()
		}
		a.Quote.LineItems = items
	}
	return a, nil
}

func (r *AgreementRepository) List(ctx context.Context) ([]entities.Agreement, error) {
	return r.query(ctx, "SELECT "+agreementColumns+" FROM agreements ORDER BY created_at DESC")
}

// Search matches query case-insensitively against the client name, the
// contract reference and the client email.
func (r *AgreementRepository) Search(ctx context.Context, query string) ([]entities.Agreement, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
	return r.query(ctx, "SELECT "+agreementColumns+` FROM agreements
		WHERE lower(client_name) LIKE ? ESCAPE '\'
		   OR lower(contract_reference) LIKE ? ESCAPE '\'
		   OR lower(client_email) LIKE ? ESCAPE '\'
		ORDER BY created_at DESC`, pattern, pattern, pattern)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *AgreementRepository) query(ctx context.Context, q string, args ...any) ([]entities.Agreement, error) {
	var rows []agreementRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("querying agreements: %w", err)
	}
	out := make([]entities.Agreement, 0, len(rows))
	for _, row := range rows {
		a, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AgreementRepository) UpdateStatus(ctx context.Context, id string, from, to entities.AgreementStatus) (entities.Agreement, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE agreements SET status = ?, updated_at = ? WHERE id = ? AND status = ?",
		string(to), formatTime(r.now()), id, string(from),
	)
	return r.afterUpdate(ctx, id, res, err)
}

func (r *AgreementRepository) MarkEmailSent(ctx context.Context, id, sentTo string, at time.Time) (entities.Agreement, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE agreements SET email_sent_at = ?, email_sent_to = ?, updated_at = ? WHERE id = ?",
		formatTime(at), sentTo, formatTime(r.now()), id,
	)
	return r.afterUpdate(ctx, id, res, err)
}

// afterUpdate returns the fresh row, or a zero-value Agreement when the
// update matched nothing.
func (r *AgreementRepository) afterUpdate(ctx context.Context, id string, res sql.Result, err error) (entities.Agreement, error) {
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("updating agreement %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Agreement{}, fmt.Errorf("updating agreement %s: %w", id, err)
	}
	if n == 0 {
		return entities.Agreement{}, nil
	}
	return r.GetByID(ctx, id)
}

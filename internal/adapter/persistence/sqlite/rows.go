package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"cfp_agreements/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Fixed-width UTC timestamps so ORDER BY on the text column is chronological.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func timePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t := parseTime(s.String)
	return &t
}

func nullDecimal(d decimal.NullDecimal) sql.NullString {
	if !d.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: d.Decimal.String(), Valid: true}
}

func decimalFrom(s sql.NullString) decimal.NullDecimal {
	if !s.Valid {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %T: %w", v, err)
	}
	return string(b), nil
}

func fromJSON(raw string, v any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decoding %T: %w", v, err)
	}
	return nil
}

type draftRow struct {
	Token       string `db:"token"`
	TemplateID  string `db:"template_id"`
	Client      string `db:"client"`
	Terms       string `db:"terms"`
	Selections  string `db:"selections"`
	Discount    string `db:"discount"`
	Status      string `db:"status"`
	AgreementID string `db:"agreement_id"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func toDraftRow(d entities.Draft) (draftRow, error) {
	client, err := toJSON(d.Client)
	if err != nil {
		return draftRow{}, err
	}
	terms, err := toJSON(d.Terms)
	if err != nil {
		return draftRow{}, err
	}
	sels := d.Selections
	if sels == nil {
		sels = []entities.Selection{}
	}
	selections, err := toJSON(sels)
	if err != nil {
		return draftRow{}, err
	}
	return draftRow{
		Token:       d.Token,
		TemplateID:  d.TemplateID,
		Client:      client,
		Terms:       terms,
		Selections:  selections,
		Discount:    d.Discount.String(),
		Status:      string(d.Status),
		AgreementID: d.AgreementID,
		CreatedAt:   formatTime(d.CreatedAt),
		UpdatedAt:   formatTime(d.UpdatedAt),
	}, nil
}

func (r draftRow) toEntity() (entities.Draft, error) {
	d := entities.Draft{
		Token:       r.Token,
		TemplateID:  r.TemplateID,
		Status:      entities.DraftStatus(r.Status),
		AgreementID: r.AgreementID,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
	if err := fromJSON(r.Client, &d.Client); err != nil {
		return entities.Draft{}, err
	}
	if err := fromJSON(r.Terms, &d.Terms); err != nil {
		return entities.Draft{}, err
	}
	if err := fromJSON(r.Selections, &d.Selections); err != nil {
		return entities.Draft{}, err
	}
	discount, err := decimal.NewFromString(r.Discount)
	if err != nil {
		return entities.Draft{}, fmt.Errorf("decoding discount: %w", err)
	}
	d.Discount = discount
	return d, nil
}

type agreementRow struct {
	ID                string         `db:"id"`
	ContractReference string         `db:"contract_reference"`
	TemplateID        string         `db:"template_id"`
	ClientName        string         `db:"client_name"`
	ClientEmail       string         `db:"client_email"`
	Client            string         `db:"client"`
	Terms             string         `db:"terms"`
	EndDate           string         `db:"end_date"`
	RenewalDate       sql.NullString `db:"renewal_date"`
	ServicesIncluded  string         `db:"services_included"`
	Quote             string         `db:"quote"`
	TermsAccepted     bool           `db:"terms_accepted"`
	ClientSignature   string         `db:"client_signature"`
	CompanySignature  string         `db:"company_signature"`
	Status            string         `db:"status"`
	DraftToken        string         `db:"draft_token"`
	EmailSentAt       sql.NullString `db:"email_sent_at"`
	EmailSentTo       string         `db:"email_sent_to"`
	ReminderSentAt    sql.NullString `db:"reminder_sent_at"`
	CreatedAt         string         `db:"created_at"`
	UpdatedAt         string         `db:"updated_at"`
}

func toAgreementRow(a entities.Agreement) (agreementRow, error) {
	row := agreementRow{
		ID:                a.ID,
		ContractReference: a.ContractReference,
		TemplateID:        a.TemplateID,
		ClientName:        a.Client.ClientName,
		ClientEmail:       a.Client.Email,
		EndDate:           formatTime(a.EndDate),
		RenewalDate:       nullTime(a.RenewalDate),
		ServicesIncluded:  a.ServicesIncluded,
		TermsAccepted:     a.TermsAccepted,
		Status:            string(a.Status),
		DraftToken:        a.DraftToken,
		EmailSentAt:       nullTime(a.EmailSentAt),
		EmailSentTo:       a.EmailSentTo,
		ReminderSentAt:    nullTime(a.ReminderSentAt),
		CreatedAt:         formatTime(a.CreatedAt),
		UpdatedAt:         formatTime(a.UpdatedAt),
	}
	var err error
	if row.Client, err = toJSON(a.Client); err != nil {
		return agreementRow{}, err
	}
	if row.Terms, err = toJSON(a.Terms); err != nil {
		return agreementRow{}, err
	}
	if row.Quote, err = toJSON(a.Quote); err != nil {
		return agreementRow{}, err
	}
	if row.ClientSignature, err = toJSON(a.ClientSignature); err != nil {
		return agreementRow{}, err
	}
	if row.CompanySignature, err = toJSON(a.CompanySignature); err != nil {
		return agreementRow{}, err
	}
	return row, nil
}

func (r agreementRow) toEntity() (entities.Agreement, error) {
	a := entities.Agreement{
		ID:                r.ID,
		ContractReference: r.ContractReference,
		TemplateID:        r.TemplateID,
		EndDate:           parseTime(r.EndDate),
		RenewalDate:       timePtr(r.RenewalDate),
		ServicesIncluded:  r.ServicesIncluded,
		TermsAccepted:     r.TermsAccepted,
		Status:            entities.AgreementStatus(r.Status),
		DraftToken:        r.DraftToken,
		EmailSentAt:       timePtr(r.EmailSentAt),
		EmailSentTo:       r.EmailSentTo,
		ReminderSentAt:    timePtr(r.ReminderSentAt),
		CreatedAt:         parseTime(r.CreatedAt),
		UpdatedAt:         parseTime(r.UpdatedAt),
	}
	columns := []struct {
		raw string
		dst any
	}{
		{r.Client, &a.Client},
		{r.Terms, &a.Terms},
		{r.Quote, &a.Quote},
		{r.ClientSignature, &a.ClientSignature},
		{r.CompanySignature, &a.CompanySignature},
	}
	for _, c := range columns {
		if err := fromJSON(c.raw, c.dst); err != nil {
			return entities.Agreement{}, err
		}
	}
	return a, nil
}

type lineRow struct {
	AgreementID    string         `db:"agreement_id"`
	Position       int            `db:"position"`
	ServiceID      string         `db:"service_id"`
	CategoryID     string         `db:"category_id"`
	Name           string         `db:"name"`
	Frequency      string         `db:"frequency"`
	Visits         int            `db:"visits"`
	UnitPrice      sql.NullString `db:"unit_price"`
	AnnualizedCost sql.NullString `db:"annualized_cost"`
}

func (l lineRow) toEntity() entities.LineItem {
	return entities.LineItem{
		ServiceID:      l.ServiceID,
		CategoryID:     l.CategoryID,
		Name:           l.Name,
		Frequency:      l.Frequency,
		Visits:         l.Visits,
		UnitPrice:      decimalFrom(l.UnitPrice),
		AnnualizedCost: decimalFrom(l.AnnualizedCost),
	}
}

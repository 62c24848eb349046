package repository

import (
	"encoding/json"
	"fmt"

	"cfp_agreements/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type clientItem struct {
	ClientName            string `dynamodbav:"client_name"`
	CompanyRegistrationNo string `dynamodbav:"company_registration_no,omitempty"`
	SiteAddress           string `dynamodbav:"site_address"`
	City                  string `dynamodbav:"city"`
	Postcode              string `dynamodbav:"postcode"`
	ContactName           string `dynamodbav:"contact_name"`
	Position              string `dynamodbav:"position,omitempty"`
	Telephone             string `dynamodbav:"telephone"`
	Email                 string `dynamodbav:"email"`
}

type termsItem struct {
	StartDate              string `dynamodbav:"start_date,omitempty"`
	DurationMonths         int    `dynamodbav:"duration_months"`
	Rolling                bool   `dynamodbav:"rolling"`
	PaymentTerms           string `dynamodbav:"payment_terms,omitempty"`
	BillingCycle           string `dynamodbav:"billing_cycle,omitempty"`
	AccessRequirements     string `dynamodbav:"access_requirements,omitempty"`
	SpecialRequirements    string `dynamodbav:"special_requirements,omitempty"`
	ImmediateRectification bool   `dynamodbav:"immediate_rectification"`
	OnSiteAuthorization    bool   `dynamodbav:"on_site_authorization"`
	DefectQuotation        bool   `dynamodbav:"defect_quotation"`
}

type selectionItem struct {
	ServiceID  string `dynamodbav:"service_id"`
	CategoryID string `dynamodbav:"category_id"`
	Included   bool   `dynamodbav:"included"`
	Visits     int    `dynamodbav:"visits"`
	UnitPrice  string `dynamodbav:"unit_price,omitempty"`
}

type signatureItem struct {
	ObjectKey string `dynamodbav:"object_key"`
	URL       string `dynamodbav:"url"`
	PrintName string `dynamodbav:"print_name"`
	SignedAt  string `dynamodbav:"signed_at"`
}

func toClientItem(c entities.ClientDetails) clientItem {
	return clientItem(c)
}

func fromClientItem(it clientItem) entities.ClientDetails {
	return entities.ClientDetails(it)
}

func toTermsItem(t entities.ContractTerms) termsItem {
	return termsItem{
		StartDate:              formatTime(t.StartDate),
		DurationMonths:         t.DurationMonths,
		Rolling:                t.Rolling,
		PaymentTerms:           t.PaymentTerms,
		BillingCycle:           t.BillingCycle,
		AccessRequirements:     t.AccessRequirements,
		SpecialRequirements:    t.SpecialRequirements,
		ImmediateRectification: t.ImmediateRectification,
		OnSiteAuthorization:    t.OnSiteAuthorization,
		DefectQuotation:        t.DefectQuotation,
	}
}

func fromTermsItem(it termsItem) entities.ContractTerms {
	return entities.ContractTerms{
		StartDate:              parseTime(it.StartDate),
		DurationMonths:         it.DurationMonths,
		Rolling:                it.Rolling,
		PaymentTerms:           it.PaymentTerms,
		BillingCycle:           it.BillingCycle,
		AccessRequirements:     it.AccessRequirements,
		SpecialRequirements:    it.SpecialRequirements,
		ImmediateRectification: it.ImmediateRectification,
		OnSiteAuthorization:    it.OnSiteAuthorization,
		DefectQuotation:        it.DefectQuotation,
	}
}

func toSelectionItems(sels []entities.Selection) []selectionItem {
	out := make([]selectionItem, len(sels))
	for i, s := range sels {
		out[i] = selectionItem{
			ServiceID:  s.ServiceID,
			CategoryID: s.CategoryID,
			Included:   s.Included,
			Visits:     s.Visits,
			UnitPrice:  formatNullDecimal(s.UnitPrice),
		}
	}
	return out
}

func fromSelectionItems(items []selectionItem) []entities.Selection {
	out := make([]entities.Selection, len(items))
	for i, it := range items {
		out[i] = entities.Selection{
			ServiceID:  it.ServiceID,
			CategoryID: it.CategoryID,
			Included:   it.Included,
			Visits:     it.Visits,
			UnitPrice:  parseNullDecimal(it.UnitPrice),
		}
	}
	return out
}

func toSignatureItem(s entities.Signature) signatureItem {
	return signatureItem{
		ObjectKey: s.ObjectKey,
		URL:       s.URL,
		PrintName: s.PrintName,
		SignedAt:  formatTime(s.SignedAt),
	}
}

func fromSignatureItem(it signatureItem) entities.Signature {
	return entities.Signature{
		ObjectKey: it.ObjectKey,
		URL:       it.URL,
		PrintName: it.PrintName,
		SignedAt:  parseTime(it.SignedAt),
	}
}

// The quote snapshot is stored as a JSON document so its decimals keep full
// precision.
func encodeQuote(q entities.Quote) (string, error) {
	b, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("encoding quote: %w", err)
	}
	return string(b), nil
}

func decodeQuote(raw string) (entities.Quote, error) {
	var q entities.Quote
	if raw == "" {
		return q, nil
	}
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return entities.Quote{}, fmt.Errorf("decoding quote: %w", err)
	}
	return q, nil
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

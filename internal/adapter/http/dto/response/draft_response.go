package response

import (
	"time"

	"cfp_agreements/internal/domain/entities"
)

type SelectionResponse struct {
	ServiceID  string  `json:"serviceId"`
	CategoryID string  `json:"categoryId"`
	Included   bool    `json:"included"`
	Visits     int     `json:"visits"`
	UnitPrice  *string `json:"unitPrice"`
}

type DraftResponse struct {
	Token       string                 `json:"token"`
	ResumeURL   string                 `json:"resumeUrl,omitempty"`
	TemplateID  string                 `json:"templateId"`
	Client      entities.ClientDetails `json:"client"`
	Terms       TermsResponse          `json:"terms"`
	Selections  []SelectionResponse    `json:"selections"`
	Discount    string                 `json:"discount"`
	Status      string                 `json:"status"`
	AgreementID string                 `json:"agreementId,omitempty"`
	Quote       QuoteResponse          `json:"quote"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type TermsResponse struct {
	StartDate              string `json:"startDate,omitempty"`
	ContractDurationMonths int    `json:"contractDurationMonths"`
	IsRollingContract      bool   `json:"isRollingContract"`
	PaymentTerms           string `json:"paymentTerms"`
	BillingCycle           string `json:"billingCycle"`
	AccessRequirements     string `json:"accessRequirements"`
	SpecialRequirements    string `json:"specialRequirements"`
	ImmediateRectification bool   `json:"immediateRectification"`
	OnSiteAuthorization    bool   `json:"onSiteAuthorization"`
	DefectQuotation        bool   `json:"defectQuotation"`
}

func FromTerms(t entities.ContractTerms) TermsResponse {
	return TermsResponse{
		StartDate:              formatDate(t.StartDate),
		ContractDurationMonths: t.DurationMonths,
		IsRollingContract:      t.Rolling,
		PaymentTerms:           t.PaymentTerms,
		BillingCycle:           t.BillingCycle,
		AccessRequirements:     t.AccessRequirements,
		SpecialRequirements:    t.SpecialRequirements,
		ImmediateRectification: t.ImmediateRectification,
		OnSiteAuthorization:    t.OnSiteAuthorization,
		DefectQuotation:        t.DefectQuotation,
	}
}

func FromDraft(d entities.Draft, q entities.Quote, resumeURL string) DraftResponse {
	sels := make([]SelectionResponse, 0, len(d.Selections))
	for _, s := range d.Selections {
		sels = append(sels, SelectionResponse{
			ServiceID:  s.ServiceID,
			CategoryID: s.CategoryID,
			Included:   s.Included,
			Visits:     s.Visits,
			UnitPrice:  money(s.UnitPrice),
		})
	}
	return DraftResponse{
		Token:       d.Token,
		ResumeURL:   resumeURL,
		TemplateID:  d.TemplateID,
		Client:      d.Client,
		Terms:       FromTerms(d.Terms),
		Selections:  sels,
		Discount:    fixed(d.Discount),
		Status:      string(d.Status),
		AgreementID: d.AgreementID,
		Quote:       FromQuote(q),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

package response

import (
	"time"

	"cfp_agreements/internal/domain/entities"
)

type SignatureResponse struct {
	URL       string    `json:"url"`
	PrintName string    `json:"printName"`
	SignedAt  time.Time `json:"signedAt"`
}

type AgreementResponse struct {
	ID                string                 `json:"id"`
	ContractReference string                 `json:"contractReference"`
	TemplateID        string                 `json:"templateId"`
	Status            string                 `json:"status"`
	Client            entities.ClientDetails `json:"client"`
	Terms             TermsResponse          `json:"terms"`
	EndDate           string                 `json:"endDate"`
	RenewalDate       string                 `json:"renewalDate,omitempty"`
	ServicesIncluded  string                 `json:"servicesIncluded"`
	Quote             QuoteResponse          `json:"quote"`
	TermsAccepted     bool                   `json:"termsAccepted"`
	ClientSignature   SignatureResponse      `json:"clientSignature"`
	CompanySignature  SignatureResponse      `json:"companySignature"`
	EmailSentAt       *time.Time             `json:"emailSentAt,omitempty"`
	EmailSentTo       string                 `json:"emailSentTo,omitempty"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}

// AgreementSummaryResponse is the list view used by the back office.
type AgreementSummaryResponse struct {
	ID                string     `json:"id"`
	ContractReference string     `json:"contractReference"`
	TemplateID        string     `json:"templateId"`
	Status            string     `json:"status"`
	ClientName        string     `json:"clientName"`
	Email             string     `json:"email"`
	Postcode          string     `json:"postcode"`
	GrandTotal        string     `json:"grandTotal"`
	RenewalDate       string     `json:"renewalDate,omitempty"`
	EmailSentAt       *time.Time `json:"emailSentAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type SubmitAgreementResponse struct {
	Agreement AgreementResponse `json:"agreement"`
	Replayed  bool              `json:"replayed"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	out := AgreementResponse{
		ID:                a.ID,
		ContractReference: a.ContractReference,
		TemplateID:        a.TemplateID,
		Status:            string(a.Status),
		Client:            a.Client,
		Terms:             FromTerms(a.Terms),
		EndDate:           formatDate(a.EndDate),
		ServicesIncluded:  a.ServicesIncluded,
		Quote:             FromQuote(a.Quote),
		TermsAccepted:     a.TermsAccepted,
		ClientSignature:   fromSignature(a.ClientSignature),
		CompanySignature:  fromSignature(a.CompanySignature),
		EmailSentAt:       a.EmailSentAt,
		EmailSentTo:       a.EmailSentTo,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.RenewalDate != nil {
		out.RenewalDate = formatDate(*a.RenewalDate)
	}
	return out
}

func FromAgreementSummary(a entities.Agreement) AgreementSummaryResponse {
	out := AgreementSummaryResponse{
		ID:                a.ID,
		ContractReference: a.ContractReference,
		TemplateID:        a.TemplateID,
		Status:            string(a.Status),
		ClientName:        a.Client.ClientName,
		Email:             a.Client.Email,
		Postcode:          a.Client.Postcode,
		GrandTotal:        fixed(a.Quote.GrandTotal),
		EmailSentAt:       a.EmailSentAt,
		CreatedAt:         a.CreatedAt,
	}
	if a.RenewalDate != nil {
		out.RenewalDate = formatDate(*a.RenewalDate)
	}
	return out
}

func FromAgreementSummaries(list []entities.Agreement) []AgreementSummaryResponse {
	out := make([]AgreementSummaryResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAgreementSummary(a))
	}
	return out
}

func FromSubmitResult(a entities.Agreement, replayed bool) SubmitAgreementResponse {
	return SubmitAgreementResponse{Agreement: FromAgreement(a), Replayed: replayed}
}

func fromSignature(s entities.Signature) SignatureResponse {
	return SignatureResponse{URL: s.URL, PrintName: s.PrintName, SignedAt: s.SignedAt}
}

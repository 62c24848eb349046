package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DraftStatus string

const (
	DraftStatusDraft     DraftStatus = "draft"
	DraftStatusSubmitted DraftStatus = "submitted"
)

// AgreementStatus represents the lifecycle of a submitted agreement.
//
// Transitions:
//   - submission creates an agreement as active
//   - pending -> active | cancelled
//   - active  -> completed | cancelled
//   - completed and cancelled are terminal
type AgreementStatus string

const (
	AgreementStatusDraft     AgreementStatus = "draft"
	AgreementStatusPending   AgreementStatus = "pending"
	AgreementStatusActive    AgreementStatus = "active"
	AgreementStatusCompleted AgreementStatus = "completed"
	AgreementStatusCancelled AgreementStatus = "cancelled"
)

var agreementTransitions = map[AgreementStatus][]AgreementStatus{
	AgreementStatusDraft:   {AgreementStatusPending, AgreementStatusActive, AgreementStatusCancelled},
	AgreementStatusPending: {AgreementStatusActive, AgreementStatusCancelled},
	AgreementStatusActive:  {AgreementStatusCompleted, AgreementStatusCancelled},
}

func (s AgreementStatus) Valid() bool {
	switch s {
	case AgreementStatusDraft, AgreementStatusPending, AgreementStatusActive,
		AgreementStatusCompleted, AgreementStatusCancelled:
		return true
	}
	return false
}

func (s AgreementStatus) CanTransitionTo(next AgreementStatus) bool {
	for _, allowed := range agreementTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ClientDetails struct {
	ClientName            string `json:"clientName"`
	CompanyRegistrationNo string `json:"companyRegistrationNo"`
	SiteAddress           string `json:"siteAddress"`
	City                  string `json:"city"`
	Postcode              string `json:"postcode"`
	ContactName           string `json:"contactName"`
	Position              string `json:"position"`
	Telephone             string `json:"telephone"`
	Email                 string `json:"email"`
}

// ContractTerms holds the commercial terms captured alongside the selection.
// A zero StartDate means it has not been chosen yet.
type ContractTerms struct {
	StartDate              time.Time `json:"startDate"`
	DurationMonths         int       `json:"contractDurationMonths"`
	Rolling                bool      `json:"isRollingContract"`
	PaymentTerms           string    `json:"paymentTerms"`
	BillingCycle           string    `json:"billingCycle"`
	AccessRequirements     string    `json:"accessRequirements"`
	SpecialRequirements    string    `json:"specialRequirements"`
	ImmediateRectification bool      `json:"immediateRectification"`
	OnSiteAuthorization    bool      `json:"onSiteAuthorization"`
	DefectQuotation        bool      `json:"defectQuotation"`
}

const (
	DefaultContractMonths = 12
	MaxContractMonths     = 120
	rollingContractYears  = 99
)

// EndDate is StartDate plus the contract duration; rolling contracts run
// open-ended.
func (t ContractTerms) EndDate() time.Time {
	if t.Rolling {
		return t.StartDate.AddDate(rollingContractYears, 0, 0)
	}
	months := t.DurationMonths
	if months == 0 {
		months = DefaultContractMonths
	}
	return t.StartDate.AddDate(0, months, 0)
}

// Draft is a client's in-progress agreement keyed by an unguessable token.
type Draft struct {
	Token       string          `json:"token"`
	TemplateID  string          `json:"templateId"`
	Client      ClientDetails   `json:"client"`
	Terms       ContractTerms   `json:"terms"`
	Selections  []Selection     `json:"selections"`
	Discount    decimal.Decimal `json:"discount"`
	Status      DraftStatus     `json:"status"`
	AgreementID string          `json:"agreementId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type Signature struct {
	ObjectKey string    `json:"objectKey"`
	URL       string    `json:"url"`
	PrintName string    `json:"printName"`
	SignedAt  time.Time `json:"signedAt"`
}

// Agreement is an immutable submitted contract. Only Status and the
// notification bookkeeping fields change after creation.
type Agreement struct {
	ID                string          `json:"id"`
	ContractReference string          `json:"contractReference"`
	TemplateID        string          `json:"templateId"`
	Client            ClientDetails   `json:"client"`
	Terms             ContractTerms   `json:"terms"`
	EndDate           time.Time       `json:"endDate"`
	RenewalDate       *time.Time      `json:"renewalDate,omitempty"`
	ServicesIncluded  string          `json:"servicesIncluded"`
	Quote             Quote           `json:"quote"`
	TermsAccepted     bool            `json:"termsAccepted"`
	ClientSignature   Signature       `json:"clientSignature"`
	CompanySignature  Signature       `json:"companySignature"`
	Status            AgreementStatus `json:"status"`
	DraftToken        string          `json:"draftToken,omitempty"`
	EmailSentAt       *time.Time      `json:"emailSentAt,omitempty"`
	EmailSentTo       string          `json:"emailSentTo,omitempty"`
	ReminderSentAt    *time.Time      `json:"reminderSentAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

package request

import (
	"errors"
	"strings"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/selection"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrInvalidStartDate = errors.New("startDate must be YYYY-MM-DD")

type ClientRequest struct {
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

func (r ClientRequest) ResolveClient() entities.ClientDetails {
	return entities.ClientDetails(r)
}

type TermsRequest struct {
	StartDate              string `json:"startDate"`
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

// ResolveTerms parses the start date, which may be blank while the form is
// still being filled in.
func (r TermsRequest) ResolveTerms() (entities.ContractTerms, error) {
	terms := entities.ContractTerms{
		DurationMonths:         r.ContractDurationMonths,
		Rolling:                r.IsRollingContract,
		PaymentTerms:           r.PaymentTerms,
		BillingCycle:           r.BillingCycle,
		AccessRequirements:     r.AccessRequirements,
		SpecialRequirements:    r.SpecialRequirements,
		ImmediateRectification: r.ImmediateRectification,
		OnSiteAuthorization:    r.OnSiteAuthorization,
		DefectQuotation:        r.DefectQuotation,
	}
	if v := strings.TrimSpace(r.StartDate); v != "" {
		start, err := time.Parse(dateLayout, v)
		if err != nil {
			return entities.ContractTerms{}, ErrInvalidStartDate
		}
		terms.StartDate = start
	}
	return terms, nil
}

// DraftRequest is the full form state of a draft.
type DraftRequest struct {
	TemplateID string             `json:"templateId"`
	Client     ClientRequest      `json:"client"`
	Terms      TermsRequest       `json:"terms"`
	Selections []SelectionRequest `json:"selections" binding:"dive"`
	Discount   *decimal.Decimal   `json:"discount"`
}

func (r DraftRequest) ResolveTemplateID() string {
	return strings.TrimSpace(r.TemplateID)
}

func (r DraftRequest) ResolveChanges() []selection.Change {
	return resolveChanges(r.Selections)
}

func (r DraftRequest) ResolveDiscount() decimal.Decimal {
	return resolveDiscount(r.Discount)
}

package request

import (
	"strings"

	"cfp_agreements/internal/domain/entities"
)

type SignatureRequest struct {
	Image     string `json:"image"`
	PrintName string `json:"printName"`
}

// SubmitAgreementRequest finalizes a quote. DraftToken is optional; when
// present the draft is superseded by the new agreement.
type SubmitAgreementRequest struct {
	DraftRequest
	DraftToken       string           `json:"draftToken"`
	TermsAccepted    bool             `json:"termsAccepted"`
	ClientSignature  SignatureRequest `json:"clientSignature"`
	CompanySignature SignatureRequest `json:"companySignature"`
}

func (r SubmitAgreementRequest) ResolveDraftToken() string {
	return strings.TrimSpace(r.DraftToken)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ResolveStatus() entities.AgreementStatus {
	return entities.AgreementStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// SendEmailsRequest lists extra recipients on top of the client's address.
// Every entry must be a well-formed address.
type SendEmailsRequest struct {
	Recipients []string `json:"recipients" binding:"dive,email"`
}

func (r SendEmailsRequest) ResolveRecipients() []string {
	out := make([]string, 0, len(r.Recipients))
	for _, rcpt := range r.Recipients {
		if v := strings.TrimSpace(rcpt); v != "" {
			out = append(out, v)
		}
	}
	return out
}

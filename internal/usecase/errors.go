package usecase

import (
	"errors"
	"fmt"

	"cfp_agreements/internal/domain/apperr"
)

var (
	ErrInvalidDraftToken       = fmt.Errorf("invalid draft token: %w", apperr.ErrValidation)
	ErrDraftNotFound           = fmt.Errorf("draft %w", apperr.ErrNotFound)
	ErrDraftAlreadySubmitted   = errors.New("draft already submitted")
	ErrAgreementNotFound       = fmt.Errorf("agreement %w", apperr.ErrNotFound)
	ErrInvalidAgreementID      = fmt.Errorf("invalid agreement id: %w", apperr.ErrValidation)
	ErrInvalidStatus           = fmt.Errorf("invalid agreement status: %w", apperr.ErrValidation)
	ErrInvalidStatusTransition = errors.New("invalid agreement status transition")
	ErrReferenceExhausted      = errors.New("could not allocate a unique contract reference")
	ErrNoRecipients            = errors.New("no email recipients")
)

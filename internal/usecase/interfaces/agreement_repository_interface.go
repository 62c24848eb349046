package interfaces

import (
	"context"
	"errors"
	"time"

	"cfp_agreements/internal/domain/entities"
)

var (
	// ErrDuplicateReference is returned by Create when the contract
	// reference is already taken.
	ErrDuplicateReference = errors.New("contract reference already exists")
	// ErrDraftConsumed is returned by Create when the draft it supersedes
	// has already been submitted.
	ErrDraftConsumed = errors.New("draft already submitted")
)

// IAgreementRepository persists submitted agreements.
//
// Create is atomic: the agreement, its equipment lines, the uniqueness of
// its contract reference and the supersession of the originating draft
// (when DraftToken is set) are all committed or none are.
//
// Lookups return a zero-value Agreement (empty ID) when nothing matches.
type IAgreementRepository interface {
	Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	List(ctx context.Context) ([]entities.Agreement, error)
	Search(ctx context.Context, query string) ([]entities.Agreement, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.AgreementStatus) (entities.Agreement, error)
	MarkEmailSent(ctx context.Context, id, sentTo string, at time.Time) (entities.Agreement, error)
}

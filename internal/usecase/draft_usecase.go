package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/selection"
	"cfp_agreements/internal/infrastructure/metrics"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var draftTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{16,64}$`)

func ValidDraftToken(token string) bool { return draftTokenPattern.MatchString(token) }

// NewDraftToken returns a fresh unguessable token.
func NewDraftToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// DraftInput is the whole form state of a draft. Saving replaces the
// previous state.
type DraftInput struct {
	TemplateID string
	Client     entities.ClientDetails
	Terms      entities.ContractTerms
	Changes    []selection.Change
	Discount   decimal.Decimal
}

type DraftResult struct {
	Draft entities.Draft
	Quote entities.Quote
}

type IDraftUseCase interface {
	CreateDraft(ctx context.Context, in DraftInput) (DraftResult, error)
	SaveDraft(ctx context.Context, token string, in DraftInput) (DraftResult, error)
	LoadDraft(ctx context.Context, token string) (DraftResult, error)
}

type DraftUseCase struct {
	repo   interfaces.IDraftRepository
	quotes IQuoteUseCase
	logger *zap.Logger
	now    func() time.Time
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDraftRepository, quotes IQuoteUseCase, logger *zap.Logger) *DraftUseCase {
	return &DraftUseCase{repo: repo, quotes: quotes, logger: logger, now: time.Now}
}

func (u *DraftUseCase) CreateDraft(ctx context.Context, in DraftInput) (DraftResult, error) {
	return u.SaveDraft(ctx, NewDraftToken(), in)
}

// SaveDraft upserts the draft. Saving the same input twice leaves the same
// stored state apart from UpdatedAt. Drafts that were already submitted are
// frozen.
func (u *DraftUseCase) SaveDraft(ctx context.Context, token string, in DraftInput) (DraftResult, error) {
	token = strings.TrimSpace(token)
	if !ValidDraftToken(token) {
		return DraftResult{}, ErrInvalidDraftToken
	}
	if err := validateDraftTerms(in.Terms); err != nil {
		metrics.DraftsSaved.WithLabelValues("invalid").Inc()
		return DraftResult{}, err
	}

	quote, selections, err := u.quotes.Evaluate(ctx, QuoteInput{TemplateID: in.TemplateID, Changes: in.Changes, Discount: in.Discount})
	if err != nil {
		metrics.DraftsSaved.WithLabelValues("invalid").Inc()
		return DraftResult{}, err
	}

	existing, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		metrics.DraftsSaved.WithLabelValues("error").Inc()
		return DraftResult{}, err
	}
	if existing.Status == entities.DraftStatusSubmitted {
		return DraftResult{}, ErrDraftAlreadySubmitted
	}

	now := u.now().UTC()
	createdAt := existing.CreatedAt
	if existing.Token == "" {
		createdAt = now
	}
	draft := entities.Draft{
		Token:      token,
		TemplateID: quote.TemplateID,
		Client:     in.Client,
		Terms:      in.Terms,
		Selections: selections,
		Discount:   in.Discount,
		Status:     entities.DraftStatusDraft,
		CreatedAt:  createdAt,
		UpdatedAt:  now,
	}
	saved, err := u.repo.Upsert(ctx, draft)
	if errors.Is(err, interfaces.ErrDraftConsumed) {
		return DraftResult{}, ErrDraftAlreadySubmitted
	}
	if err != nil {
		metrics.DraftsSaved.WithLabelValues("error").Inc()
		u.logger.Error("[draft][usecase] upsert failed", zap.String("token", redactToken(token)), zap.Error(err))
		return DraftResult{}, err
	}

	metrics.DraftsSaved.WithLabelValues("ok").Inc()
	u.logger.Info("[draft][usecase] saved",
		zap.String("token", redactToken(token)),
		zap.Bool("created", existing.Token == ""),
		zap.Int("included", len(quote.LineItems)),
	)
	return DraftResult{Draft: saved, Quote: quote}, nil
}

// LoadDraft returns the stored draft with a quote recomputed against the
// current catalog. A malformed token reads as an unknown one.
func (u *DraftUseCase) LoadDraft(ctx context.Context, token string) (DraftResult, error) {
	token = strings.TrimSpace(token)
	if !ValidDraftToken(token) {
		return DraftResult{}, ErrDraftNotFound
	}

	d, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return DraftResult{}, err
	}
	if d.Token == "" {
		return DraftResult{}, ErrDraftNotFound
	}

	q, err := u.quotes.PriceSelections(ctx, d.TemplateID, d.Selections, d.Discount)
	if err != nil {
		return DraftResult{}, err
	}
	return DraftResult{Draft: d, Quote: q}, nil
}

// validateDraftTerms only rejects values that can never become valid; a
// draft may be incomplete.
func validateDraftTerms(t entities.ContractTerms) error {
	if t.DurationMonths < 0 || t.DurationMonths > entities.MaxContractMonths {
		return apperr.Constraint("terms.contractDurationMonths", "must be between 1 and %d", entities.MaxContractMonths)
	}
	return nil
}

// redactToken keeps enough of a token to correlate log lines.
func redactToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}

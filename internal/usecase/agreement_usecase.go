package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/selection"
	"cfp_agreements/internal/infrastructure/metrics"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	maxReferenceAttempts = 5
	referenceSuffixLen   = 8
	// RenewalWindow is how far ahead renewals are reported by default.
	RenewalWindow = 30 * 24 * time.Hour
)

type SignatureInput struct {
	Image     string
	PrintName string
}

type SubmitInput struct {
	DraftToken       string
	TemplateID       string
	Client           entities.ClientDetails
	Terms            entities.ContractTerms
	Changes          []selection.Change
	Discount         decimal.Decimal
	TermsAccepted    bool
	ClientSignature  SignatureInput
	CompanySignature SignatureInput
}

// SubmitResult reports whether the agreement was created now or returned
// from an earlier submission of the same draft.
type SubmitResult struct {
	Agreement entities.Agreement
	Replayed  bool
}

// IAgreementUseCase covers submission and the back-office lifecycle.
//
//   - Submit: validate, price, sign and persist a new agreement
//   - UpdateStatus: move an agreement along its lifecycle
//   - DueForRenewal: active agreements renewing soon with no reminder sent
type IAgreementUseCase interface {
	Submit(ctx context.Context, in SubmitInput) (SubmitResult, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	List(ctx context.Context) ([]entities.Agreement, error)
	Search(ctx context.Context, query string) ([]entities.Agreement, error)
	UpdateStatus(ctx context.Context, id string, status entities.AgreementStatus) (entities.Agreement, error)
	DueForRenewal(ctx context.Context, within time.Duration) ([]entities.Agreement, error)
}

type AgreementUseCase struct {
	repo       interfaces.IAgreementRepository
	drafts     interfaces.IDraftRepository
	signatures interfaces.ISignatureStore
	quotes     IQuoteUseCase
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
	newSuffix  func() string
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

func NewAgreementUseCase(
	repo interfaces.IAgreementRepository,
	drafts interfaces.IDraftRepository,
	signatures interfaces.ISignatureStore,
	quotes IQuoteUseCase,
	logger *zap.Logger,
) *AgreementUseCase {
	return &AgreementUseCase{
		repo:       repo,
		drafts:     drafts,
		signatures: signatures,
		quotes:     quotes,
		logger:     logger,
		now:        time.Now,
		newID:      func() string { return ulid.Make().String() },
		newSuffix:  referenceSuffix,
	}
}

// referenceSuffix takes the random tail of a ULID, which is uppercase
// Crockford base32.
func referenceSuffix() string {
	id := ulid.Make().String()
	return id[len(id)-referenceSuffixLen:]
}

func (u *AgreementUseCase) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	in.DraftToken = strings.TrimSpace(in.DraftToken)
	if in.DraftToken != "" && !ValidDraftToken(in.DraftToken) {
		return SubmitResult{}, ErrInvalidDraftToken
	}

	quote, selections, err := u.quotes.Evaluate(ctx, QuoteInput{TemplateID: in.TemplateID, Changes: in.Changes, Discount: in.Discount})
	if err != nil {
		u.countSubmission(in.TemplateID, "invalid")
		return SubmitResult{}, err
	}
	if err := validateSubmission(in, quote); err != nil {
		u.countSubmission(quote.TemplateID, "invalid")
		u.logger.Info("[agreement][usecase] submission rejected", zap.Error(err))
		return SubmitResult{}, err
	}

	if in.DraftToken != "" {
		replay, done, err := u.prepareDraft(ctx, in, quote, selections)
		if err != nil || done {
			return replay, err
		}
	}

	tmpl, err := u.quotes.Catalog(ctx, quote.TemplateID)
	if err != nil {
		return SubmitResult{}, err
	}
	t, err := tmpl.Template(quote.TemplateID)
	if err != nil {
		return SubmitResult{}, err
	}

	agreement := u.buildAgreement(in, quote)
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		agreement.ContractReference = t.ReferencePrefix + "-" + u.newSuffix()

		keys, err := u.storeSignatures(ctx, &agreement, in)
		if err != nil {
			u.countSubmission(quote.TemplateID, "error")
			return SubmitResult{}, err
		}

		created, err := u.repo.Create(ctx, agreement)
		if err == nil {
			u.countSubmission(quote.TemplateID, "ok")
			u.logger.Info("[agreement][usecase] submitted",
				zap.String("agreement_id", created.ID),
				zap.String("reference", created.ContractReference),
				zap.String("grand_total", created.Quote.GrandTotal.StringFixed(2)),
			)
			return SubmitResult{Agreement: created}, nil
		}

		u.deleteSignatures(ctx, keys)
		switch {
		case errors.Is(err, interfaces.ErrDuplicateReference):
			metrics.ReferenceCollisions.Inc()
			u.logger.Warn("[agreement][usecase] reference collision", zap.String("reference", agreement.ContractReference), zap.Int("attempt", attempt))
			continue
		case errors.Is(err, interfaces.ErrDraftConsumed):
			u.countSubmission(quote.TemplateID, "conflict")
			return SubmitResult{}, ErrDraftAlreadySubmitted
		default:
			u.countSubmission(quote.TemplateID, "error")
			u.logger.Error("[agreement][usecase] create failed", zap.Error(err))
			return SubmitResult{}, err
		}
	}

	u.countSubmission(quote.TemplateID, "error")
	return SubmitResult{}, ErrReferenceExhausted
}

// prepareDraft makes sure a draft row exists for the token so the
// agreement can supersede it. A draft that was already submitted replays the
// earlier agreement.
func (u *AgreementUseCase) prepareDraft(ctx context.Context, in SubmitInput, quote entities.Quote, selections []entities.Selection) (SubmitResult, bool, error) {
	d, err := u.drafts.GetByToken(ctx, in.DraftToken)
	if err != nil {
		return SubmitResult{}, true, err
	}
	if d.Status == entities.DraftStatusSubmitted {
		existing, err := u.repo.GetByID(ctx, d.AgreementID)
		if err != nil {
			return SubmitResult{}, true, err
		}
		if existing.ID == "" {
			return SubmitResult{}, true, ErrDraftAlreadySubmitted
		}
		u.countSubmission(quote.TemplateID, "replayed")
		u.logger.Info("[agreement][usecase] replayed submission", zap.String("agreement_id", existing.ID), zap.String("token", redactToken(in.DraftToken)))
		return SubmitResult{Agreement: existing, Replayed: true}, true, nil
	}

	now := u.now().UTC()
	createdAt := d.CreatedAt
	if d.Token == "" {
		createdAt = now
	}
	_, err = u.drafts.Upsert(ctx, entities.Draft{
		Token:      in.DraftToken,
		TemplateID: quote.TemplateID,
		Client:     in.Client,
		Terms:      in.Terms,
		Selections: selections,
		Discount:   in.Discount,
		Status:     entities.DraftStatusDraft,
		CreatedAt:  createdAt,
		UpdatedAt:  now,
	})
	if errors.Is(err, interfaces.ErrDraftConsumed) {
		return SubmitResult{}, true, ErrDraftAlreadySubmitted
	}
	if err != nil {
		return SubmitResult{}, true, err
	}
	return SubmitResult{}, false, nil
}

func (u *AgreementUseCase) buildAgreement(in SubmitInput, quote entities.Quote) entities.Agreement {
	now := u.now().UTC()
	terms := in.Terms
	if terms.DurationMonths == 0 {
		terms.DurationMonths = entities.DefaultContractMonths
	}
	a := entities.Agreement{
		ID:               u.newID(),
		TemplateID:       quote.TemplateID,
		Client:           trimClient(in.Client),
		Terms:            terms,
		EndDate:          terms.EndDate(),
		ServicesIncluded: quote.Summary,
		Quote:            quote,
		TermsAccepted:    in.TermsAccepted,
		Status:           entities.AgreementStatusActive,
		DraftToken:       in.DraftToken,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if !terms.Rolling {
		renewal := a.EndDate
		a.RenewalDate = &renewal
	}
	return a
}

func trimClient(c entities.ClientDetails) entities.ClientDetails {
	return entities.ClientDetails{
		ClientName:            strings.TrimSpace(c.ClientName),
		CompanyRegistrationNo: strings.TrimSpace(c.CompanyRegistrationNo),
		SiteAddress:           strings.TrimSpace(c.SiteAddress),
		City:                  strings.TrimSpace(c.City),
		Postcode:              strings.ToUpper(strings.TrimSpace(c.Postcode)),
		ContactName:           strings.TrimSpace(c.ContactName),
		Position:              strings.TrimSpace(c.Position),
		Telephone:             strings.TrimSpace(c.Telephone),
		Email:                 strings.TrimSpace(c.Email),
	}
}

// storeSignatures uploads both signatures under the current reference. On
// failure anything already uploaded is removed.
func (u *AgreementUseCase) storeSignatures(ctx context.Context, a *entities.Agreement, in SubmitInput) ([]string, error) {
	signedAt := u.now().UTC()
	var keys []string
	for _, s := range []struct {
		party  string
		input  SignatureInput
		target *entities.Signature
	}{
		{"client", in.ClientSignature, &a.ClientSignature},
		{"company", in.CompanySignature, &a.CompanySignature},
	} {
		data, err := decodeSignature(s.input.Image)
		if err != nil {
			u.deleteSignatures(ctx, keys)
			return nil, err
		}
		key := fmt.Sprintf("signatures/%s-%s-%s.png", a.ContractReference, s.party, uuid.NewString()[:8])
		url, err := u.signatures.Put(ctx, key, data, "image/png")
		if err != nil {
			u.deleteSignatures(ctx, keys)
			u.logger.Error("[agreement][usecase] signature upload failed", zap.String("key", key), zap.Error(err))
			return nil, fmt.Errorf("store %s signature: %w", s.party, err)
		}
		keys = append(keys, key)
		*s.target = entities.Signature{
			ObjectKey: key,
			URL:       url,
			PrintName: strings.TrimSpace(s.input.PrintName),
			SignedAt:  signedAt,
		}
	}
	return keys, nil
}

func (u *AgreementUseCase) deleteSignatures(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := u.signatures.Delete(ctx, key); err != nil {
			u.logger.Warn("[agreement][usecase] orphaned signature", zap.String("key", key), zap.Error(err))
		}
	}
}

func (u *AgreementUseCase) countSubmission(templateID, outcome string) {
	metrics.AgreementsSubmitted.WithLabelValues(templateID, outcome).Inc()
}

func (u *AgreementUseCase) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Agreement{}, ErrInvalidAgreementID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return a, nil
}

func (u *AgreementUseCase) List(ctx context.Context) ([]entities.Agreement, error) {
	return u.repo.List(ctx)
}

func (u *AgreementUseCase) Search(ctx context.Context, query string) ([]entities.Agreement, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return u.repo.List(ctx)
	}
	return u.repo.Search(ctx, query)
}

func (u *AgreementUseCase) UpdateStatus(ctx context.Context, id string, status entities.AgreementStatus) (entities.Agreement, error) {
	if !status.Valid() {
		return entities.Agreement{}, ErrInvalidStatus
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Agreement{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.Agreement{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, status)
	if err != nil {
		return entities.Agreement{}, err
	}
	// Zero value means the status moved underneath us.
	if updated.ID == "" {
		return entities.Agreement{}, fmt.Errorf("%w: %s changed concurrently", ErrInvalidStatusTransition, current.ID)
	}
	u.logger.Info("[agreement][usecase] status changed",
		zap.String("agreement_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)
	return updated, nil
}

// DueForRenewal lists active agreements whose renewal date falls within the
// window and that have not had a reminder yet, soonest first.
func (u *AgreementUseCase) DueForRenewal(ctx context.Context, within time.Duration) ([]entities.Agreement, error) {
	if within <= 0 {
		within = RenewalWindow
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	horizon := now.Add(within)

	due := []entities.Agreement{}
	for _, a := range all {
		if a.Status != entities.AgreementStatusActive || a.RenewalDate == nil || a.ReminderSentAt != nil {
			continue
		}
		if a.RenewalDate.Before(now) || a.RenewalDate.After(horizon) {
			continue
		}
		due = append(due, a)
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].RenewalDate.Before(*due[j].RenewalDate) })
	return due, nil
}

package usecase

import (
	"context"
	"strings"

	"cfp_agreements/internal/domain/catalog"
	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/pricing"
	"cfp_agreements/internal/domain/selection"
	"cfp_agreements/internal/infrastructure/metrics"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// QuoteInput is a stateless pricing request: a template, the changes to
// apply to its default selections and a flat discount.
type QuoteInput struct {
	TemplateID string
	Changes    []selection.Change
	Discount   decimal.Decimal
}

// IQuoteUseCase exposes the catalog and the pricing engine.
type IQuoteUseCase interface {
	Templates(ctx context.Context) []entities.AgreementTemplate
	Catalog(ctx context.Context, templateID string) (*catalog.Catalog, error)
	GetItem(ctx context.Context, id string) (entities.ServiceItem, error)
	Price(ctx context.Context, in QuoteInput) (entities.Quote, error)
	Evaluate(ctx context.Context, in QuoteInput) (entities.Quote, []entities.Selection, error)
	PriceSelections(ctx context.Context, templateID string, saved []entities.Selection, discount decimal.Decimal) (entities.Quote, error)
}

type QuoteUseCase struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(c *catalog.Catalog, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{catalog: c, logger: logger}
}

func (u *QuoteUseCase) Templates(_ context.Context) []entities.AgreementTemplate {
	return u.catalog.Templates()
}

// Catalog returns the catalog narrowed to a template. An empty id means the
// default template, the first one declared.
func (u *QuoteUseCase) Catalog(_ context.Context, templateID string) (*catalog.Catalog, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		tmpls := u.catalog.Templates()
		if len(tmpls) == 0 {
			return u.catalog, nil
		}
		templateID = tmpls[0].ID
	}
	return u.catalog.ForTemplate(templateID)
}

func (u *QuoteUseCase) GetItem(_ context.Context, id string) (entities.ServiceItem, error) {
	return u.catalog.GetItem(strings.TrimSpace(id))
}

func (u *QuoteUseCase) Price(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	q, _, err := u.Evaluate(ctx, in)
	return q, err
}

// Evaluate prices the input and also returns the resulting selections so
// callers can persist exactly what was priced.
func (u *QuoteUseCase) Evaluate(ctx context.Context, in QuoteInput) (entities.Quote, []entities.Selection, error) {
	cat, err := u.Catalog(ctx, in.TemplateID)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	set := selection.Initialize(cat)
	if err := set.Apply(in.Changes); err != nil {
		return entities.Quote{}, nil, err
	}
	q, err := u.assemble(cat, set, in.Discount)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	return q, set.View(), nil
}

// PriceSelections reprices a persisted selection list against the current
// catalog.
func (u *QuoteUseCase) PriceSelections(ctx context.Context, templateID string, saved []entities.Selection, discount decimal.Decimal) (entities.Quote, error) {
	cat, err := u.Catalog(ctx, templateID)
	if err != nil {
		return entities.Quote{}, err
	}
	set, dropped, err := selection.Restore(cat, saved)
	if err != nil {
		return entities.Quote{}, err
	}
	if len(dropped) > 0 {
		u.logger.Warn("[quote][usecase] saved selections no longer in catalog",
			zap.String("template", templateID),
			zap.Strings("service_ids", dropped),
		)
	}
	return u.assemble(cat, set, discount)
}

func (u *QuoteUseCase) assemble(cat *catalog.Catalog, set *selection.Set, discount decimal.Decimal) (entities.Quote, error) {
	q, err := pricing.AssembleQuote(cat, set, discount)
	if err != nil {
		return entities.Quote{}, err
	}
	metrics.QuotesPriced.WithLabelValues(q.TemplateID).Inc()
	u.logger.Debug("[quote][usecase] assembled",
		zap.String("template", q.TemplateID),
		zap.Int("lines", len(q.LineItems)),
		zap.Int("unresolved", len(q.UnresolvedItems)),
		zap.String("grand_total", pricing.Round(q.GrandTotal).StringFixed(pricing.MoneyPlaces)),
	)
	return q, nil
}

package request

import (
	"strings"

	"cfp_agreements/internal/domain/selection"

	"github.com/shopspring/decimal"
)

// SelectionRequest changes one catalog item. Omitted fields keep the
// item's current value; priceTbc clears the price so it is quoted later.
type SelectionRequest struct {
	ServiceID string           `json:"serviceId" binding:"required"`
	Included  *bool            `json:"included"`
	Visits    *int             `json:"visits"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	PriceTBC  bool             `json:"priceTbc"`
}

func (r SelectionRequest) ResolveChange() selection.Change {
	ch := selection.Change{
		ServiceID: strings.TrimSpace(r.ServiceID),
		Included:  r.Included,
		Visits:    r.Visits,
	}
	switch {
	case r.PriceTBC:
		ch.UnitPrice = &decimal.NullDecimal{}
	case r.UnitPrice != nil:
		p := decimal.NewNullDecimal(*r.UnitPrice)
		ch.UnitPrice = &p
	}
	return ch
}

// QuoteRequest is a stateless pricing request.
type QuoteRequest struct {
	TemplateID string             `json:"templateId"`
	Selections []SelectionRequest `json:"selections" binding:"dive"`
	Discount   *decimal.Decimal   `json:"discount"`
}

func (r QuoteRequest) ResolveTemplateID() string {
	return strings.TrimSpace(r.TemplateID)
}

func (r QuoteRequest) ResolveChanges() []selection.Change {
	return resolveChanges(r.Selections)
}

func (r QuoteRequest) ResolveDiscount() decimal.Decimal {
	return resolveDiscount(r.Discount)
}

func resolveChanges(sels []SelectionRequest) []selection.Change {
	out := make([]selection.Change, 0, len(sels))
	for _, s := range sels {
		out = append(out, s.ResolveChange())
	}
	return out
}

func resolveDiscount(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

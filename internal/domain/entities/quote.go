package entities

import (
	"github.com/shopspring/decimal"
)

// Selection is the client's choice for a single catalog item.
// An invalid UnitPrice on an included item means the price is TBC.
type Selection struct {
	ServiceID  string              `json:"serviceId"`
	CategoryID string              `json:"categoryId"`
	Included   bool                `json:"included"`
	Visits     int                 `json:"visits"`
	UnitPrice  decimal.NullDecimal `json:"unitPrice"`
}

// LineItem is an included selection as it appears on a quote.
type LineItem struct {
	ServiceID      string              `json:"serviceId"`
	CategoryID     string              `json:"categoryId"`
	Name           string              `json:"name"`
	Frequency      string              `json:"frequency"`
	Visits         int                 `json:"visits"`
	UnitPrice      decimal.NullDecimal `json:"unitPrice"`
	AnnualizedCost decimal.NullDecimal `json:"annualizedCost"`
}

func (l LineItem) PriceTBC() bool { return !l.UnitPrice.Valid }

type CategorySubtotal struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// Quote is the priced snapshot of a selection set. Amounts are kept at full
// precision; rounding happens when they are presented.
//
// Invariants:
//   - Subtotal = sum(CategoryBreakdown)
//   - NetTotal = Subtotal - Discount, never negative
//   - GrandTotal = NetTotal + VATAmount
type Quote struct {
	TemplateID        string             `json:"templateId"`
	LineItems         []LineItem         `json:"lineItems"`
	CategoryBreakdown []CategorySubtotal `json:"categoryBreakdown"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	RequestedDiscount decimal.Decimal    `json:"requestedDiscount"`
	Discount          decimal.Decimal    `json:"discount"`
	NetTotal          decimal.Decimal    `json:"netTotal"`
	VATRate           decimal.Decimal    `json:"vatRate"`
	VATAmount         decimal.Decimal    `json:"vatAmount"`
	GrandTotal        decimal.Decimal    `json:"grandTotal"`
	UnresolvedItems   []string           `json:"unresolvedItems"`
	Summary           string             `json:"summary"`
}

func (q Quote) HasUnresolvedPrices() bool { return len(q.UnresolvedItems) > 0 }

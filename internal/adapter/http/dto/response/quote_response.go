package response

import (
	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	ServiceID      string  `json:"serviceId"`
	CategoryID     string  `json:"categoryId"`
	Name           string  `json:"name"`
	Frequency      string  `json:"frequency"`
	Visits         int     `json:"visits"`
	UnitPrice      *string `json:"unitPrice"`
	AnnualizedCost *string `json:"annualizedCost"`
	PriceTBC       bool    `json:"priceTbc"`
}

type CategorySubtotalResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Subtotal     string `json:"subtotal"`
}

// QuoteResponse carries amounts as 2dp strings; the display fields are
// formatted in pounds sterling.
type QuoteResponse struct {
	TemplateID        string                     `json:"templateId,omitempty"`
	LineItems         []LineItemResponse         `json:"lineItems"`
	CategoryBreakdown []CategorySubtotalResponse `json:"categoryBreakdown"`
	Subtotal          string                     `json:"subtotal"`
	RequestedDiscount string                     `json:"requestedDiscount"`
	Discount          string                     `json:"discount"`
	NetTotal          string                     `json:"netTotal"`
	VATRate           string                     `json:"vatRate"`
	VATAmount         string                     `json:"vatAmount"`
	GrandTotal        string                     `json:"grandTotal"`
	GrandTotalDisplay string                     `json:"grandTotalDisplay"`
	UnresolvedItems   []string                   `json:"unresolvedItems"`
	Summary           string                     `json:"summary"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	out := QuoteResponse{
		TemplateID:        q.TemplateID,
		LineItems:         make([]LineItemResponse, 0, len(q.LineItems)),
		CategoryBreakdown: make([]CategorySubtotalResponse, 0, len(q.CategoryBreakdown)),
		Subtotal:          fixed(q.Subtotal),
		RequestedDiscount: fixed(q.RequestedDiscount),
		Discount:          fixed(q.Discount),
		NetTotal:          fixed(q.NetTotal),
		VATRate:           q.VATRate.String(),
		VATAmount:         fixed(q.VATAmount),
		GrandTotal:        fixed(q.GrandTotal),
		GrandTotalDisplay: pricing.FormatGBP(q.GrandTotal),
		UnresolvedItems:   q.UnresolvedItems,
		Summary:           q.Summary,
	}
	if out.UnresolvedItems == nil {
		out.UnresolvedItems = []string{}
	}
	for _, l := range q.LineItems {
		out.LineItems = append(out.LineItems, LineItemResponse{
			ServiceID:      l.ServiceID,
			CategoryID:     l.CategoryID,
			Name:           l.Name,
			Frequency:      l.Frequency,
			Visits:         l.Visits,
			UnitPrice:      money(l.UnitPrice),
			AnnualizedCost: money(l.AnnualizedCost),
			PriceTBC:       l.PriceTBC(),
		})
	}
	for _, c := range q.CategoryBreakdown {
		out.CategoryBreakdown = append(out.CategoryBreakdown, CategorySubtotalResponse{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Subtotal:     fixed(c.Subtotal),
		})
	}
	return out
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(pricing.MoneyPlaces)
}

func money(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := fixed(d.Decimal)
	return &s
}

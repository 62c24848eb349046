// Package pricing turns a selection set into annualized costs, totals and a
// quote snapshot. Every function here is pure: the same catalog, selections
// and discount always produce the same result.
package pricing

import (
	"fmt"
	"strings"

	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/domain/catalog"
	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/selection"

	"github.com/shopspring/decimal"
)

// VATRate is the UK standard rate applied to the discounted total.
var VATRate = decimal.RequireFromString("0.20")

// MoneyPlaces is the number of decimal places used when presenting amounts.
const MoneyPlaces = 2

// AnnualizedCost is the yearly cost of a selection. Excluded selections cost
// zero. An included selection without a price is TBC and yields an invalid
// NullDecimal. One-off and reactive items are charged their unit price once;
// periodic items are charged per visit.
func AnnualizedCost(item entities.ServiceItem, sel entities.Selection) decimal.NullDecimal {
	if !sel.Included {
		return decimal.NewNullDecimal(decimal.Zero)
	}
	if !sel.UnitPrice.Valid {
		return decimal.NullDecimal{}
	}
	if !item.Frequency.IsPeriodic() {
		return sel.UnitPrice
	}
	return decimal.NewNullDecimal(sel.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(sel.Visits))))
}

// CategorySubtotal sums the priced annualized costs of a category. TBC
// lines contribute nothing.
func CategorySubtotal(cat entities.ServiceCategory, set *selection.Set) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cat.Items {
		sel, ok := set.Get(item.ID)
		if !ok {
			continue
		}
		if cost := AnnualizedCost(item, sel); cost.Valid {
			total = total.Add(cost.Decimal)
		}
	}
	return total
}

func GrandSubtotal(c *catalog.Catalog, set *selection.Set) decimal.Decimal {
	total := decimal.Zero
	for _, cat := range c.ListCategories() {
		total = total.Add(CategorySubtotal(cat, set))
	}
	return total
}

type Totals struct {
	Subtotal          decimal.Decimal
	RequestedDiscount decimal.Decimal
	Discount          decimal.Decimal
	NetTotal          decimal.Decimal
	VATAmount         decimal.Decimal
	GrandTotal        decimal.Decimal
}

// ComputeTotals applies the discount and VAT. A negative discount is
// rejected. A discount larger than the subtotal is capped so the net total
// never goes below zero; the requested amount is kept for display.
func ComputeTotals(subtotal, discount decimal.Decimal) (Totals, error) {
	if discount.IsNegative() {
		return Totals{}, apperr.Constraint("discount", "must not be negative")
	}
	applied := decimal.Min(discount, subtotal)
	if applied.IsNegative() {
		applied = decimal.Zero
	}
	net := subtotal.Sub(applied)
	vat := net.Mul(VATRate)
	return Totals{
		Subtotal:          subtotal,
		RequestedDiscount: discount,
		Discount:          applied,
		NetTotal:          net,
		VATAmount:         vat,
		GrandTotal:        net.Add(vat),
	}, nil
}

func FrequencyLabel(visits int) string {
	switch visits {
	case 1:
		return "Annual"
	case 2:
		return "Bi-Annual (6-monthly)"
	case 4:
		return "Quarterly"
	case 12:
		return "Monthly"
	}
	return fmt.Sprintf("%dx per year", visits)
}

// FrequencyDescriptor is the short frequency text shown next to a line.
func FrequencyDescriptor(item entities.ServiceItem, sel entities.Selection) string {
	switch item.Frequency.Kind {
	case entities.FrequencyOneOff:
		return "ONE-OFF"
	case entities.FrequencyReactive:
		return "Per Event"
	}
	return FrequencyLabel(sel.Visits)
}

// Summary lists the included services, e.g.
// "Fire Alarm Maintenance (Bi-Annual (6-monthly)); Callout (Per Event)".
func Summary(c *catalog.Catalog, set *selection.Set) string {
	var parts []string
	for _, cat := range c.ListCategories() {
		for _, item := range cat.Items {
			sel, ok := set.Get(item.ID)
			if !ok || !sel.Included {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s (%s)", item.Name, FrequencyDescriptor(item, sel)))
		}
	}
	return strings.Join(parts, "; ")
}

// AssembleQuote snapshots the included selections into line items, the
// breakdown of categories with a positive subtotal and the totals. Items
// whose price is TBC are listed as unresolved and excluded from every total.
func AssembleQuote(c *catalog.Catalog, set *selection.Set, discount decimal.Decimal) (entities.Quote, error) {
	q := entities.Quote{
		LineItems:         []entities.LineItem{},
		CategoryBreakdown: []entities.CategorySubtotal{},
		UnresolvedItems:   []string{},
		VATRate:           VATRate,
	}
	if tmpls := c.Templates(); len(tmpls) == 1 {
		q.TemplateID = tmpls[0].ID
	}

	subtotal := decimal.Zero
	for _, cat := range c.ListCategories() {
		for _, item := range cat.Items {
			sel, ok := set.Get(item.ID)
			if !ok || !sel.Included {
				continue
			}
			cost := AnnualizedCost(item, sel)
			q.LineItems = append(q.LineItems, entities.LineItem{
				ServiceID:      item.ID,
				CategoryID:     cat.ID,
				Name:           item.Name,
				Frequency:      FrequencyDescriptor(item, sel),
				Visits:         sel.Visits,
				UnitPrice:      sel.UnitPrice,
				AnnualizedCost: cost,
			})
			if !cost.Valid {
				q.UnresolvedItems = append(q.UnresolvedItems, item.ID)
			}
		}
		// Only categories that contribute to the price are broken down.
		catTotal := CategorySubtotal(cat, set)
		if !catTotal.IsPositive() {
			continue
		}
		q.CategoryBreakdown = append(q.CategoryBreakdown, entities.CategorySubtotal{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Subtotal:     catTotal,
		})
		subtotal = subtotal.Add(catTotal)
	}

	totals, err := ComputeTotals(subtotal, discount)
	if err != nil {
		return entities.Quote{}, err
	}
	q.Subtotal = totals.Subtotal
	q.RequestedDiscount = totals.RequestedDiscount
	q.Discount = totals.Discount
	q.NetTotal = totals.NetTotal
	q.VATAmount = totals.VATAmount
	q.GrandTotal = totals.GrandTotal
	q.Summary = Summary(c, set)
	return q, nil
}

// RecomputeTotals derives the totals of a stored quote from its line items
// alone, so a persisted snapshot can be checked against its own numbers.
func RecomputeTotals(q entities.Quote) (Totals, error) {
	subtotal := decimal.Zero
	for _, line := range q.LineItems {
		if line.AnnualizedCost.Valid {
			subtotal = subtotal.Add(line.AnnualizedCost.Decimal)
		}
	}
	return ComputeTotals(subtotal, q.RequestedDiscount)
}

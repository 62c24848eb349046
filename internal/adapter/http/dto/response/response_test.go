package response

import (
	"testing"
	"time"

	"cfp_agreements/internal/domain/catalog"
	"cfp_agreements/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromQuote(t *testing.T) {
	q := entities.Quote{
		TemplateID: "systems",
		LineItems: []entities.LineItem{
			{ServiceID: "fire-curtains", Visits: 1, UnitPrice: decimal.NewNullDecimal(decimal.NewFromInt(100)), AnnualizedCost: decimal.NewNullDecimal(decimal.NewFromInt(100))},
			{ServiceID: "disabled-refuge", Visits: 2},
		},
		CategoryBreakdown: []entities.CategorySubtotal{{CategoryID: "passive-fire", Subtotal: decimal.NewFromInt(100)}},
		Subtotal:          decimal.NewFromInt(100),
		RequestedDiscount: decimal.RequireFromString("10"),
		Discount:          decimal.RequireFromString("10"),
		NetTotal:          decimal.RequireFromString("90"),
		VATRate:           decimal.RequireFromString("0.20"),
		VATAmount:         decimal.RequireFromString("18"),
		GrandTotal:        decimal.RequireFromString("1234.5"),
		UnresolvedItems:   []string{"disabled-refuge"},
	}

	got := FromQuote(q)
	if got.Subtotal != "100.00" || got.NetTotal != "90.00" || got.GrandTotal != "1234.50" {
		t.Fatalf("unexpected amounts %+v", got)
	}
	if got.GrandTotalDisplay != "£1,234.50" {
		t.Fatalf("unexpected display %q", got.GrandTotalDisplay)
	}
	if got.LineItems[0].UnitPrice == nil || *got.LineItems[0].UnitPrice != "100.00" {
		t.Fatalf("unexpected unit price %v", got.LineItems[0].UnitPrice)
	}
	if got.LineItems[1].UnitPrice != nil || got.LineItems[1].AnnualizedCost != nil || !got.LineItems[1].PriceTBC {
		t.Fatalf("TBC line should have null prices, got %+v", got.LineItems[1])
	}
	if got.CategoryBreakdown[0].Subtotal != "100.00" {
		t.Fatalf("unexpected breakdown %+v", got.CategoryBreakdown)
	}
}

func TestFromQuote_EmptyListsAreNotNull(t *testing.T) {
	got := FromQuote(entities.Quote{})
	if got.LineItems == nil || got.CategoryBreakdown == nil || got.UnresolvedItems == nil {
		t.Fatalf("expected empty slices, got %+v", got)
	}
}

func TestFromCatalog(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pfe, err := c.ForTemplate("portable-equipment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := FromCatalog(pfe, c.Templates())
	if len(got.Templates) != 2 {
		t.Fatalf("expected both templates listed, got %d", len(got.Templates))
	}
	if got.Template == nil || got.Template.ReferencePrefix != "CFP-PFE" {
		t.Fatalf("expected selected template CFP-PFE, got %+v", got.Template)
	}
	if len(got.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(got.Categories))
	}
}

func TestFromServiceItem(t *testing.T) {
	tbc := FromServiceItem(entities.ServiceItem{ID: "disabled-refuge", Frequency: entities.FrequencyPolicy{Kind: entities.FrequencyPeriodic, Visits: []int{1, 2}}})
	if tbc.UnitPrice != nil || !tbc.PriceTBC || tbc.PriceDisplay != "TBC" {
		t.Fatalf("unexpected TBC item %+v", tbc)
	}

	oneOff := FromServiceItem(entities.ServiceItem{ID: "takeover", Frequency: entities.FrequencyPolicy{Kind: entities.FrequencyOneOff}, ListPrice: decimal.NewNullDecimal(decimal.NewFromInt(250))})
	if oneOff.VisitOptions == nil || len(oneOff.VisitOptions) != 0 || *oneOff.UnitPrice != "250.00" {
		t.Fatalf("unexpected one-off item %+v", oneOff)
	}
}

func TestFromAgreement(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	renewal := start.AddDate(1, 0, 0)
	a := entities.Agreement{
		ID:                "01A",
		ContractReference: "CFP-SYS-AAAA0001",
		Terms:             entities.ContractTerms{StartDate: start, DurationMonths: 12},
		EndDate:           renewal,
		RenewalDate:       &renewal,
		Status:            entities.AgreementStatusActive,
		ClientSignature:   entities.Signature{ObjectKey: "signatures/x.png", URL: "https://blob/x.png", PrintName: "Jane"},
		Quote:             entities.Quote{GrandTotal: decimal.RequireFromString("840")},
	}

	got := FromAgreement(a)
	if got.Terms.StartDate != "2026-04-01" || got.EndDate != "2027-04-01" || got.RenewalDate != "2027-04-01" {
		t.Fatalf("unexpected dates %+v", got)
	}
	if got.ClientSignature.URL != "https://blob/x.png" {
		t.Fatalf("unexpected signature %+v", got.ClientSignature)
	}

	summary := FromAgreementSummary(a)
	if summary.GrandTotal != "840.00" || summary.Status != "active" {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

package repository

import (
	"errors"
	"strings"
	"testing"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func sampleAgreement() entities.Agreement {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	renewal := created.AddDate(1, 0, 0)
	return entities.Agreement{
		ID:                "01JNZ8Y3M4ZK7Q2T1V9B6C5D4E",
		ContractReference: "CFP-SYS-9B6C5D4E",
		TemplateID:        "systems",
		Client: entities.ClientDetails{
			ClientName: "Acme Estates Ltd",
			Postcode:   "SW1A 1AA",
			Email:      "facilities@acme.example",
		},
		Terms:       entities.ContractTerms{StartDate: created, DurationMonths: 12},
		EndDate:     renewal,
		RenewalDate: &renewal,
		Quote: entities.Quote{
			Subtotal:   decimal.RequireFromString("750"),
			VATRate:    decimal.RequireFromString("0.20"),
			GrandTotal: decimal.RequireFromString("840.00"),
			LineItems: []entities.LineItem{{
				ServiceID: "disabled-refuge",
				Visits:    2,
			}},
			UnresolvedItems: []string{},
		},
		TermsAccepted:   true,
		ClientSignature: entities.Signature{ObjectKey: "signatures/CFP-SYS-9B6C5D4E-client-1a2b3c4d.png", PrintName: "Jane Client", SignedAt: created},
		Status:          entities.AgreementStatusActive,
		DraftToken:      "abcdEFGH1234_-xy",
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func TestAgreementItemMapping(t *testing.T) {
	a := sampleAgreement()

	it, err := toAgreementItem(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["email_sent_at"]; ok {
		t.Fatalf("unset email_sent_at should be omitted")
	}

	got, err := unmarshalAgreement(av)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ContractReference != a.ContractReference || got.Client.Postcode != "SW1A 1AA" {
		t.Fatalf("unexpected agreement %+v", got)
	}
	if got.RenewalDate == nil || !got.RenewalDate.Equal(*a.RenewalDate) {
		t.Fatalf("renewal date lost: %v", got.RenewalDate)
	}
	if got.EmailSentAt != nil {
		t.Fatalf("expected nil EmailSentAt")
	}
	if !got.Quote.GrandTotal.Equal(decimal.RequireFromString("840")) || got.Quote.LineItems[0].ServiceID != "disabled-refuge" {
		t.Fatalf("quote snapshot lost: %+v", got.Quote)
	}
	if !got.ClientSignature.SignedAt.Equal(a.ClientSignature.SignedAt) {
		t.Fatalf("signature timestamp lost")
	}
}

func TestDraftItemKeepsTBCPrices(t *testing.T) {
	d := entities.Draft{
		Token: "abcdEFGH1234_-xy",
		Selections: []entities.Selection{
			{ServiceID: "fire-curtains", Included: true, Visits: 1, UnitPrice: decimal.NewNullDecimal(decimal.RequireFromString("100"))},
			{ServiceID: "disabled-refuge", Included: true, Visits: 2},
		},
		Discount: decimal.RequireFromString("12.50"),
		Status:   entities.DraftStatusDraft,
	}

	av, err := attributevalue.MarshalMap(toDraftItem(d))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var it draftItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromDraftItem(it)
	if !got.Selections[0].UnitPrice.Valid || !got.Selections[0].UnitPrice.Decimal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("priced selection lost its price: %+v", got.Selections[0])
	}
	if got.Selections[1].UnitPrice.Valid {
		t.Fatalf("TBC selection gained a price: %+v", got.Selections[1])
	}
	if !got.Discount.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected discount %s", got.Discount)
	}
}

func TestMapTransactionError(t *testing.T) {
	failed := types.CancellationReason{Code: aws.String("ConditionalCheckFailed")}
	none := types.CancellationReason{Code: aws.String("None")}

	cases := map[string]struct {
		err  error
		want error
	}{
		"duplicate reference": {
			err:  &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{none, failed}},
			want: interfaces.ErrDuplicateReference,
		},
		"draft consumed": {
			err:  &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{none, none, failed}},
			want: interfaces.ErrDraftConsumed,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := mapTransactionError(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	other := errors.New("throttled")
	if got := mapTransactionError(other); got != other {
		t.Fatalf("unrelated errors must pass through, got %v", got)
	}
}

func TestMatchesQuery(t *testing.T) {
	a := sampleAgreement()
	for _, q := range []string{"acme", "cfp-sys-9b6c", "FACILITIES@"} {
		if !matchesQuery(a, strings.ToLower(q)) {
			t.Fatalf("expected %q to match", q)
		}
	}
	if matchesQuery(a, "globex") {
		t.Fatalf("unexpected match")
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/usecase/interfaces"
	mock_interfaces "cfp_agreements/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func sampleAgreement() entities.Agreement {
	return entities.Agreement{
		ID:                "a1",
		ContractReference: "CFP-SYS-AB12CD34",
		Client: entities.ClientDetails{
			ClientName:  "Acme <b>Ltd</b>",
			ContactName: "Sam Smith",
			Email:       "sam@acme.test",
			Telephone:   "0113 000 0000",
		},
		Terms: entities.ContractTerms{
			StartDate:           time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			SpecialRequirements: "<script>alert(1)</script>Key from reception",
		},
		Quote: entities.Quote{
			LineItems: []entities.LineItem{{
				ServiceID:      "fda-maintenance",
				Name:           "Fire Alarm Maintenance",
				Frequency:      "Bi-Annual (6-monthly)",
				Visits:         2,
				UnitPrice:      decimal.NewNullDecimal(decimal.NewFromInt(750)),
				AnnualizedCost: decimal.NewNullDecimal(decimal.NewFromInt(1500)),
			}},
			GrandTotal: decimal.NewFromInt(1800),
		},
		Status: entities.AgreementStatusActive,
	}
}

func TestNotificationUseCase_SendConfirmation(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, "", zap.NewNop())
		_, err := uc.SendConfirmation(context.Background(), " ", nil)
		if !errors.Is(err, ErrInvalidAgreementID) {
			t.Fatalf("expected ErrInvalidAgreementID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil, "", zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Agreement{}, nil)

		_, err := uc.SendConfirmation(context.Background(), "a1", nil)
		if !errors.Is(err, ErrAgreementNotFound) {
			t.Fatalf("expected ErrAgreementNotFound, got %v", err)
		}
	})

	t.Run("sends client and company emails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewNotificationUseCase(repo, mailer, "office@cfp.test", zap.NewNop())

		a := sampleAgreement()
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)

		var sent []interfaces.Email
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e interfaces.Email) error {
			sent = append(sent, e)
			return nil
		}).Times(2)
		repo.EXPECT().MarkEmailSent(gomock.Any(), "a1", "sam@acme.test, boss@acme.test", gomock.Any()).Return(a, nil)

		if _, err := uc.SendConfirmation(context.Background(), "a1", []string{"SAM@acme.test", "boss@acme.test"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		client := sent[0]
		if len(client.To) != 2 || !strings.Contains(client.Subject, "CFP-SYS-AB12CD34") {
			t.Fatalf("unexpected client email %+v", client)
		}
		if !strings.Contains(client.HTML, "£1,800.00") || !strings.Contains(client.Text, "£1,500.00") {
			t.Fatalf("amounts not rendered: %s", client.Text)
		}
		if strings.Contains(client.HTML, "<script>") || !strings.Contains(client.HTML, "Key from reception") {
			t.Fatalf("free text not sanitised")
		}
		if sent[1].To[0] != "office@cfp.test" || !strings.Contains(sent[1].Subject, "Acme Ltd") {
			t.Fatalf("unexpected company email %+v", sent[1])
		}
	})

	t.Run("client email failure is returned and nothing is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewNotificationUseCase(repo, mailer, "", zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(sampleAgreement(), nil)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		_, err := uc.SendConfirmation(context.Background(), "a1", nil)
		if err == nil || err.Error() != "smtp" {
			t.Fatalf("expected smtp error, got %v", err)
		}
	})

	t.Run("company email failure does not fail the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewNotificationUseCase(repo, mailer, "office@cfp.test", zap.NewNop())

		a := sampleAgreement()
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)
		gomock.InOrder(
			mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
			mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp")),
		)
		repo.EXPECT().MarkEmailSent(gomock.Any(), "a1", "sam@acme.test", gomock.Any()).Return(a, nil)

		if _, err := uc.SendConfirmation(context.Background(), "a1", nil); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

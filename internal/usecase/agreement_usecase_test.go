package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/selection"
	"cfp_agreements/internal/usecase/interfaces"
	mock_interfaces "cfp_agreements/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testPNG = "data:image/png;base64," + base64.StdEncoding.EncodeToString(append([]byte("\x89PNG\r\n\x1a\n"), "signature"...))

func validSubmission() SubmitInput {
	return SubmitInput{
		TemplateID: "systems",
		Client: entities.ClientDetails{
			ClientName:  "Acme Ltd",
			SiteAddress: "1 High Street",
			City:        "Leeds",
			Postcode:    "ls1 1aa",
			ContactName: "Sam Smith",
			Telephone:   "0113 000 0000",
			Email:       "sam@acme.test",
		},
		Terms: entities.ContractTerms{
			StartDate:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			DurationMonths: 12,
		},
		Changes:          []selection.Change{includeChange("fda-maintenance", 2)},
		TermsAccepted:    true,
		ClientSignature:  SignatureInput{Image: testPNG, PrintName: "Sam Smith"},
		CompanySignature: SignatureInput{Image: testPNG, PrintName: "Jo Bloggs"},
	}
}

type agreementMocks struct {
	repo   *mock_interfaces.MockIAgreementRepository
	drafts *mock_interfaces.MockIDraftRepository
	store  *mock_interfaces.MockISignatureStore
}

func newAgreementUseCase(t *testing.T, ctrl *gomock.Controller) (*AgreementUseCase, agreementMocks) {
	t.Helper()
	m := agreementMocks{
		repo:   mock_interfaces.NewMockIAgreementRepository(ctrl),
		drafts: mock_interfaces.NewMockIDraftRepository(ctrl),
		store:  mock_interfaces.NewMockISignatureStore(ctrl),
	}
	uc := NewAgreementUseCase(m.repo, m.drafts, m.store, newTestQuotes(t), zap.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC) }
	uc.newID = func() string { return "01HZAGREEMENT" }
	return uc, m
}

func TestAgreementUseCase_Submit_Validation(t *testing.T) {
	t.Run("terms not accepted lists every invalid field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAgreementUseCase(t, ctrl)

		in := validSubmission()
		in.TermsAccepted = false
		in.Client.Email = "not-an-email"
		in.CompanySignature.PrintName = ""

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		var verr *apperr.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		for _, f := range []string{"termsAccepted", "client.email", "companySignature.printName"} {
			if !verr.HasField(f) {
				t.Fatalf("expected field %q in %v", f, verr.FieldNames())
			}
		}
		if len(verr.Fields) != 3 {
			t.Fatalf("expected exactly 3 fields, got %v", verr.FieldNames())
		}
	})

	t.Run("TBC price blocks submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAgreementUseCase(t, ctrl)

		in := validSubmission()
		in.Changes = append(in.Changes, includeChange("disabled-refuge", 1))

		_, err := uc.Submit(context.Background(), in)
		var verr *apperr.ValidationError
		if !errors.As(err, &verr) || !verr.HasField("selections.disabled-refuge.unitPrice") {
			t.Fatalf("expected unresolved price error, got %v", err)
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAgreementUseCase(t, ctrl)

		in := validSubmission()
		in.Changes = nil
		in.Terms.StartDate = time.Time{}

		_, err := uc.Submit(context.Background(), in)
		var verr *apperr.ValidationError
		if !errors.As(err, &verr) || !verr.HasField("selections") || !verr.HasField("terms.startDate") {
			t.Fatalf("expected selections and startDate errors, got %v", err)
		}
	})

	t.Run("signature that is not a PNG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAgreementUseCase(t, ctrl)

		in := validSubmission()
		in.ClientSignature.Image = base64.StdEncoding.EncodeToString([]byte("GIF89a"))

		_, err := uc.Submit(context.Background(), in)
		var verr *apperr.ValidationError
		if !errors.As(err, &verr) || !verr.HasField("clientSignature.image") {
			t.Fatalf("expected signature error, got %v", err)
		}
	})

	t.Run("illegal visit count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAgreementUseCase(t, ctrl)

		in := validSubmission()
		in.Changes = []selection.Change{includeChange("fda-maintenance", 3)}

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, apperr.ErrConstraint) {
			t.Fatalf("expected constraint error, got %v", err)
		}
	})
}

func TestAgreementUseCase_Submit(t *testing.T) {
	t.Run("creates an active agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)
		uc.newSuffix = func() string { return "AB12CD34" }

		m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
			func(_ context.Context, key string, _ []byte, _ string) (string, error) {
				if !strings.HasPrefix(key, "signatures/CFP-SYS-AB12CD34-") {
					t.Fatalf("unexpected key %q", key)
				}
				return "https://blob.test/" + key, nil
			}).Times(2)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
			return a, nil
		})

		res, err := uc.Submit(context.Background(), validSubmission())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		a := res.Agreement
		if res.Replayed {
			t.Fatalf("fresh submission reported as replay")
		}
		if a.Status != entities.AgreementStatusActive {
			t.Fatalf("expected active, got %s", a.Status)
		}
		if a.ContractReference != "CFP-SYS-AB12CD34" {
			t.Fatalf("unexpected reference %q", a.ContractReference)
		}
		if !a.Quote.GrandTotal.Equal(decimal.NewFromInt(1800)) {
			t.Fatalf("expected 1800, got %s", a.Quote.GrandTotal)
		}
		wantEnd := time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)
		if !a.EndDate.Equal(wantEnd) || a.RenewalDate == nil || !a.RenewalDate.Equal(wantEnd) {
			t.Fatalf("unexpected end/renewal %v %v", a.EndDate, a.RenewalDate)
		}
		if a.Client.Postcode != "LS1 1AA" {
			t.Fatalf("postcode not normalised: %q", a.Client.Postcode)
		}
		if a.ClientSignature.URL == "" || a.CompanySignature.PrintName != "Jo Bloggs" {
			t.Fatalf("signatures not recorded: %+v %+v", a.ClientSignature, a.CompanySignature)
		}
		if a.ServicesIncluded == "" {
			t.Fatalf("expected services summary")
		}
	})

	t.Run("reference collision retries with a new reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)
		suffixes := []string{"AAAAAAAA", "BBBBBBBB"}
		uc.newSuffix = func() string {
			s := suffixes[0]
			suffixes = suffixes[1:]
			return s
		}

		m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil).Times(4)
		m.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		gomock.InOrder(
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Agreement{}, interfaces.ErrDuplicateReference),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				return a, nil
			}),
		)

		res, err := uc.Submit(context.Background(), validSubmission())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Agreement.ContractReference != "CFP-SYS-BBBBBBBB" {
			t.Fatalf("expected second reference, got %q", res.Agreement.ContractReference)
		}
	})

	t.Run("storage failure removes uploaded signatures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)

		m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil).Times(2)
		m.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Agreement{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), validSubmission())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("second signature upload fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)

		gomock.InOrder(
			m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil),
			m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down")),
		)
		m.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := uc.Submit(context.Background(), validSubmission())
		if err == nil || !strings.Contains(err.Error(), "s3 down") {
			t.Fatalf("expected upload error, got %v", err)
		}
	})

	t.Run("resubmitting a submitted draft replays the agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)

		in := validSubmission()
		in.DraftToken = testToken
		m.drafts.EXPECT().GetByToken(gomock.Any(), testToken).Return(entities.Draft{
			Token: testToken, Status: entities.DraftStatusSubmitted, AgreementID: "01HZEXISTING",
		}, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "01HZEXISTING").Return(entities.Agreement{ID: "01HZEXISTING"}, nil)

		res, err := uc.Submit(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Replayed || res.Agreement.ID != "01HZEXISTING" {
			t.Fatalf("expected replay of existing agreement, got %+v", res)
		}
	})

	t.Run("draft is saved before it is superseded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)

		in := validSubmission()
		in.DraftToken = testToken
		m.drafts.EXPECT().GetByToken(gomock.Any(), testToken).Return(entities.Draft{}, nil)
		m.drafts.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.Draft) (entities.Draft, error) {
			return d, nil
		})
		m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil).Times(2)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
			if a.DraftToken != testToken {
				t.Fatalf("expected draft token on agreement")
			}
			return a, nil
		})

		if _, err := uc.Submit(context.Background(), in); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("concurrent submission of the same draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)

		in := validSubmission()
		in.DraftToken = testToken
		m.drafts.EXPECT().GetByToken(gomock.Any(), testToken).Return(entities.Draft{Token: testToken, Status: entities.DraftStatusDraft}, nil)
		m.drafts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.Draft{}, nil)
		m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil).Times(2)
		m.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Agreement{}, interfaces.ErrDraftConsumed)

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrDraftAlreadySubmitted) {
			t.Fatalf("expected ErrDraftAlreadySubmitted, got %v", err)
		}
	})
}

func TestAgreementUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewAgreementUseCase(nil, nil, nil, nil, zap.NewNop())
		_, err := uc.UpdateStatus(context.Background(), "id", "archived")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Agreement{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", entities.AgreementStatusCompleted)
		if !errors.Is(err, ErrAgreementNotFound) {
			t.Fatalf("expected ErrAgreementNotFound, got %v", err)
		}
	})

	t.Run("terminal status cannot move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Agreement{ID: "a1", Status: entities.AgreementStatusCancelled}, nil)

		_, err := uc.UpdateStatus(context.Background(), "a1", entities.AgreementStatusActive)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("active to completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Agreement{ID: "a1", Status: entities.AgreementStatusActive}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "a1", entities.AgreementStatusActive, entities.AgreementStatusCompleted).
			Return(entities.Agreement{ID: "a1", Status: entities.AgreementStatusCompleted}, nil)

		got, err := uc.UpdateStatus(context.Background(), "a1", entities.AgreementStatusCompleted)
		if err != nil || got.Status != entities.AgreementStatusCompleted {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAgreementUseCase(t, ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Agreement{ID: "a1", Status: entities.AgreementStatusActive}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "a1", entities.AgreementStatusActive, entities.AgreementStatusCancelled).Return(entities.Agreement{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "a1", entities.AgreementStatusCancelled)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestAgreementUseCase_DueForRenewal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newAgreementUseCase(t, ctrl)
	now := uc.now()

	at := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}
	m.repo.EXPECT().List(gomock.Any()).Return([]entities.Agreement{
		{ID: "later", Status: entities.AgreementStatusActive, RenewalDate: at(20)},
		{ID: "soon", Status: entities.AgreementStatusActive, RenewalDate: at(5)},
		{ID: "too-far", Status: entities.AgreementStatusActive, RenewalDate: at(45)},
		{ID: "reminded", Status: entities.AgreementStatusActive, RenewalDate: at(3), ReminderSentAt: at(-1)},
		{ID: "cancelled", Status: entities.AgreementStatusCancelled, RenewalDate: at(3)},
		{ID: "rolling", Status: entities.AgreementStatusActive},
	}, nil)

	due, err := uc.DueForRenewal(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(due) != 2 || due[0].ID != "soon" || due[1].ID != "later" {
		t.Fatalf("unexpected renewals %+v", due)
	}
}

func TestAgreementUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newAgreementUseCase(t, ctrl)

	m.repo.EXPECT().List(gomock.Any()).Return([]entities.Agreement{{ID: "a"}}, nil)
	m.repo.EXPECT().Search(gomock.Any(), "acme").Return([]entities.Agreement{{ID: "b"}}, nil)

	if got, _ := uc.Search(context.Background(), "   "); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("blank query should list everything, got %+v", got)
	}
	if got, _ := uc.Search(context.Background(), " acme "); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("unexpected search result %+v", got)
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cfp_agreements/internal/adapter/http/handlers/mocks"
	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testToken = "tok_0123456789abcdef"

func newDraftServer(t *testing.T) (*mocks.MockIDraftUseCase, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDraftUseCase(ctrl)
	h := NewDraftHandler(uc, func(token string) string { return "https://agreements.example/agreement?draft=" + token }, zap.NewNop())

	r := gin.New()
	r.POST("/v1/drafts", h.CreateDraft)
	r.PUT("/v1/drafts/:token", h.SaveDraft)
	r.GET("/v1/drafts/:token", h.GetDraft)
	return uc, r
}

func draftResult(token string) usecase.DraftResult {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return usecase.DraftResult{
		Draft: entities.Draft{
			Token:      token,
			TemplateID: "systems",
			Client:     entities.ClientDetails{ClientName: "Acme Ltd"},
			Status:     entities.DraftStatusDraft,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

func TestDraftHandler_CreateDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		_, r := newDraftServer(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad start date", func(t *testing.T) {
		_, r := newDraftServer(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/drafts", bytes.NewBufferString(`{"terms":{"startDate":"01/03/2026"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"terms.startDate"`)) {
			t.Fatalf("expected field error, got %s", w.Body.String())
		}
	})

	t.Run("created", func(t *testing.T) {
		uc, r := newDraftServer(t)
		uc.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.DraftInput) (usecase.DraftResult, error) {
			if in.Client.ClientName != "Acme Ltd" || in.Terms.StartDate.IsZero() {
				t.Fatalf("unexpected input %+v", in)
			}
			return draftResult(testToken), nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts",
			bytes.NewBufferString(`{"templateId":"systems","client":{"clientName":"Acme Ltd"},"terms":{"startDate":"2026-03-01"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["token"] != testToken || body["resumeUrl"] != "https://agreements.example/agreement?draft="+testToken {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestDraftHandler_SaveDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already submitted", func(t *testing.T) {
		uc, r := newDraftServer(t)
		uc.EXPECT().SaveDraft(gomock.Any(), testToken, gomock.Any()).Return(usecase.DraftResult{}, usecase.ErrDraftAlreadySubmitted)

		req := httptest.NewRequest(http.MethodPut, "/v1/drafts/"+testToken, bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		uc, r := newDraftServer(t)
		uc.EXPECT().SaveDraft(gomock.Any(), "short", gomock.Any()).Return(usecase.DraftResult{}, usecase.ErrInvalidDraftToken)

		req := httptest.NewRequest(http.MethodPut, "/v1/drafts/short", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("saved", func(t *testing.T) {
		uc, r := newDraftServer(t)
		uc.EXPECT().SaveDraft(gomock.Any(), testToken, gomock.Any()).Return(draftResult(testToken), nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/drafts/"+testToken, bytes.NewBufferString(`{"templateId":"systems"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDraftHandler_GetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		uc, r := newDraftServer(t)
		uc.EXPECT().LoadDraft(gomock.Any(), testToken).Return(usecase.DraftResult{}, usecase.ErrDraftNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drafts/"+testToken, nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"DRAFT_NOT_FOUND"`)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, r := newDraftServer(t)
		uc.EXPECT().LoadDraft(gomock.Any(), testToken).Return(draftResult(testToken), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drafts/"+testToken, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

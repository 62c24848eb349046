package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cfp_agreements/internal/adapter/http/handlers"
	"cfp_agreements/internal/adapter/http/handlers/mocks"
	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/infrastructure/metrics"
	"cfp_agreements/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const adminToken = "s3cret-admin-token"

type routerMocks struct {
	agreements *mocks.MockIAgreementUseCase
}

func newTestRouter(t *testing.T, token string) (*gin.Engine, routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockIQuoteUseCase(ctrl)
	drafts := mocks.NewMockIDraftUseCase(ctrl)
	agreements := mocks.NewMockIAgreementUseCase(ctrl)
	notifications := mocks.NewMockINotificationUseCase(ctrl)
	logger := zap.NewNop()

	h := Handlers{
		Catalog:   handlers.NewCatalogHandler(quotes, logger),
		Quote:     handlers.NewQuoteHandler(quotes, logger),
		Draft:     handlers.NewDraftHandler(drafts, func(tok string) string { return "/agreement?draft=" + tok }, logger),
		Agreement: handlers.NewAgreementHandler(agreements, notifications, logger),
	}
	return NewRouter(h, token, metrics.NewRegistry(), logger), routerMocks{agreements: agreements}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t, adminToken)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, adminToken)
	serve(r, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "cfp_http_request_duration_seconds") {
		t.Fatalf("expected request histogram in metrics output")
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t, adminToken)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/agreements", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/agreements/a1", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	if w := serve(r, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminRoutesDisabledWithoutToken(t *testing.T) {
	r, _ := newTestRouter(t, "")
	req := httptest.NewRequest(http.MethodGet, "/v1/agreements", nil)
	req.Header.Set("Authorization", "Bearer anything")
	if w := serve(r, req); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestAdminStaticRoutesBeforeID(t *testing.T) {
	r, m := newTestRouter(t, adminToken)
	m.agreements.EXPECT().Search(gomock.Any(), "acme").Return([]entities.Agreement{}, nil)
	m.agreements.EXPECT().DueForRenewal(gomock.Any(), gomock.Any()).Return(nil, nil)

	for _, path := range []string{"/v1/agreements/search?q=acme", "/v1/agreements/renewals"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		if w := serve(r, req); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestSubmissionIsPublic(t *testing.T) {
	r, m := newTestRouter(t, adminToken)
	m.agreements.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitResult{Agreement: entities.Agreement{ID: "a1", Status: entities.AgreementStatusActive}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/agreements", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if w := serve(r, req); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

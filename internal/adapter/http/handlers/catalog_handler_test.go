package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cfp_agreements/internal/adapter/http/handlers/mocks"
	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/domain/catalog"
	"cfp_agreements/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCatalogHandler_GetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	full, err := catalog.Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("narrowed to template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewCatalogHandler(uc, zap.NewNop())

		pfe, _ := full.ForTemplate("portable-equipment")
		uc.EXPECT().Catalog(gomock.Any(), "portable-equipment").Return(pfe, nil)
		uc.EXPECT().Templates(gomock.Any()).Return(full.Templates())

		r := gin.New()
		r.GET("/v1/catalog", h.GetCatalog)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog?template=portable-equipment", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Template   struct{ ID string } `json:"template"`
			Categories []json.RawMessage  `json:"categories"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Template.ID != "portable-equipment" || len(body.Categories) != 3 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewCatalogHandler(uc, zap.NewNop())

		uc.EXPECT().Catalog(gomock.Any(), "nope").Return(nil, apperr.NotFound("template", "nope"))

		r := gin.New()
		r.GET("/v1/catalog", h.GetCatalog)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog?template=nope", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetItem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewCatalogHandler(uc, zap.NewNop())

	uc.EXPECT().GetItem(gomock.Any(), "disabled-refuge").Return(entities.ServiceItem{
		ID:        "disabled-refuge",
		Name:      "Disabled Refuge",
		Frequency: entities.FrequencyPolicy{Kind: entities.FrequencyPeriodic, Visits: []int{1, 2}},
	}, nil)

	r := gin.New()
	r.GET("/v1/catalog/items/:id", h.GetItem)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/items/disabled-refuge", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["unitPrice"] != nil || body["priceTbc"] != true {
		t.Fatalf("expected TBC item, got %s", w.Body.String())
	}
}

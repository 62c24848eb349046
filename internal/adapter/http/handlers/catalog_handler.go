package handlers

import (
	"net/http"

	response "cfp_agreements/internal/adapter/http/dto/response"
	"cfp_agreements/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the service schedule.
type CatalogHandler struct {
	quotes usecase.IQuoteUseCase
	logger *zap.Logger
}

func NewCatalogHandler(quotes usecase.IQuoteUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{quotes: quotes, logger: logger}
}

// GetCatalog godoc
// @Summary      Service catalog
// @Description  Categories and items of an agreement template. Items with a null unitPrice are priced on site (TBC).
// @Tags         catalog
// @Produce      json
// @Param        template  query     string  false  "Template id (defaults to the first template)"
// @Success      200       {object}  response.CatalogResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	ctx := c.Request.Context()
	cat, err := h.quotes.Catalog(ctx, c.Query("template"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(cat, h.quotes.Templates(ctx)))
}

// GetItem godoc
// @Summary      Catalog item
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Service item id"
// @Success      200  {object}  response.ServiceItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /catalog/items/{id} [get]
func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, err := h.quotes.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceItem(item))
}

package handlers

import (
	"net/http"

	request "cfp_agreements/internal/adapter/http/dto/request"
	response "cfp_agreements/internal/adapter/http/dto/response"
	"cfp_agreements/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuoteHandler struct {
	quotes usecase.IQuoteUseCase
	logger *zap.Logger
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, logger: logger}
}

// PriceQuote godoc
// @Summary      Price a selection
// @Description  Applies the selection changes to the template defaults and returns the full quote. Nothing is stored.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      request.QuoteRequest  true  "Selections and discount"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) PriceQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	quote, err := h.quotes.Price(c.Request.Context(), usecase.QuoteInput{
		TemplateID: payload.ResolveTemplateID(),
		Changes:    payload.ResolveChanges(),
		Discount:   payload.ResolveDiscount(),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

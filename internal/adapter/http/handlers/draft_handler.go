package handlers

import (
	"net/http"

	request "cfp_agreements/internal/adapter/http/dto/request"
	response "cfp_agreements/internal/adapter/http/dto/response"
	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftHandler saves and resumes in-progress agreements. The token in the
// path is the only credential a client needs.
type DraftHandler struct {
	drafts   usecase.IDraftUseCase
	draftURL func(token string) string
	logger   *zap.Logger
}

func NewDraftHandler(drafts usecase.IDraftUseCase, draftURL func(token string) string, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{drafts: drafts, draftURL: draftURL, logger: logger}
}

// CreateDraft godoc
// @Summary      Start a draft
// @Description  Stores the form state under a new server-generated token.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        request  body      request.DraftRequest  true  "Draft state"
// @Success      201      {object}  response.DraftResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /drafts [post]
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	in, ok := h.bindDraft(c)
	if !ok {
		return
	}
	res, err := h.drafts.CreateDraft(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(res.Draft, res.Quote, h.draftURL(res.Draft.Token)))
}

// SaveDraft godoc
// @Summary      Save a draft
// @Description  Replaces the draft stored under token. Saving the same state twice is a no-op apart from updatedAt.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        token    path      string                true  "Draft token"
// @Param        request  body      request.DraftRequest  true  "Draft state"
// @Success      200      {object}  response.DraftResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /drafts/{token} [put]
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	in, ok := h.bindDraft(c)
	if !ok {
		return
	}
	res, err := h.drafts.SaveDraft(c.Request.Context(), c.Param("token"), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(res.Draft, res.Quote, h.draftURL(res.Draft.Token)))
}

// GetDraft godoc
// @Summary      Resume a draft
// @Description  Returns the stored draft with a quote recomputed against the current catalog.
// @Tags         drafts
// @Produce      json
// @Param        token  path      string  true  "Draft token"
// @Success      200    {object}  response.DraftResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /drafts/{token} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	res, err := h.drafts.LoadDraft(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(res.Draft, res.Quote, h.draftURL(res.Draft.Token)))
}

func (h *DraftHandler) bindDraft(c *gin.Context) (usecase.DraftInput, bool) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return usecase.DraftInput{}, false
	}
	terms, err := payload.Terms.ResolveTerms()
	if err != nil {
		writeError(c, h.logger, startDateError(err))
		return usecase.DraftInput{}, false
	}
	return usecase.DraftInput{
		TemplateID: payload.ResolveTemplateID(),
		Client:     payload.Client.ResolveClient(),
		Terms:      terms,
		Changes:    payload.ResolveChanges(),
		Discount:   payload.ResolveDiscount(),
	}, true
}

func startDateError(err error) error {
	verr := &apperr.ValidationError{}
	verr.Add("terms.startDate", err.Error())
	return verr
}

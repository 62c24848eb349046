package handlers

import (
	"net/http"
	"strconv"
	"time"

	request "cfp_agreements/internal/adapter/http/dto/request"
	response "cfp_agreements/internal/adapter/http/dto/response"
	"cfp_agreements/internal/usecase"
	"cfp_agreements/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidWindow = pkg.NewDomainErrorSimple("INVALID_REQUEST", "days must be a positive integer", http.StatusBadRequest)

// AgreementHandler handles submission and the back-office agreement routes.
type AgreementHandler struct {
	agreements    usecase.IAgreementUseCase
	notifications usecase.INotificationUseCase
	logger        *zap.Logger
}

func NewAgreementHandler(agreements usecase.IAgreementUseCase, notifications usecase.INotificationUseCase, logger *zap.Logger) *AgreementHandler {
	return &AgreementHandler{agreements: agreements, notifications: notifications, logger: logger}
}

// SubmitAgreement godoc
// @Summary      Submit an agreement
// @Description  Validates the whole form, stores both signatures and creates the agreement. Resubmitting a submitted draft returns the existing agreement with replayed=true.
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Param        request  body      request.SubmitAgreementRequest  true  "Agreement"
// @Success      201      {object}  response.SubmitAgreementResponse
// @Success      200      {object}  response.SubmitAgreementResponse  "replayed"
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /agreements [post]
func (h *AgreementHandler) SubmitAgreement(c *gin.Context) {
	var payload request.SubmitAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	terms, err := payload.Terms.ResolveTerms()
	if err != nil {
		writeError(c, h.logger, startDateError(err))
		return
	}

	res, err := h.agreements.Submit(c.Request.Context(), usecase.SubmitInput{
		DraftToken:    payload.ResolveDraftToken(),
		TemplateID:    payload.ResolveTemplateID(),
		Client:        payload.Client.ResolveClient(),
		Terms:         terms,
		Changes:       payload.ResolveChanges(),
		Discount:      payload.ResolveDiscount(),
		TermsAccepted: payload.TermsAccepted,
		ClientSignature: usecase.SignatureInput{
			Image:     payload.ClientSignature.Image,
			PrintName: payload.ClientSignature.PrintName,
		},
		CompanySignature: usecase.SignatureInput{
			Image:     payload.CompanySignature.Image,
			PrintName: payload.CompanySignature.PrintName,
		},
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, response.FromSubmitResult(res.Agreement, res.Replayed))
}

// ListAgreements godoc
// @Summary      List agreements
// @Description  Newest first.
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.AgreementSummaryResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /agreements [get]
func (h *AgreementHandler) ListAgreements(c *gin.Context) {
	list, err := h.agreements.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreementSummaries(list))
}

// SearchAgreements godoc
// @Summary      Search agreements
// @Description  Case-insensitive match on client name, contract reference or email.
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        q    query     string  false  "Search text"
// @Success      200  {array}   response.AgreementSummaryResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /agreements/search [get]
func (h *AgreementHandler) SearchAgreements(c *gin.Context) {
	list, err := h.agreements.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreementSummaries(list))
}

// GetAgreement godoc
// @Summary      Agreement detail
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Agreement id"
// @Success      200  {object}  response.AgreementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /agreements/{id} [get]
func (h *AgreementHandler) GetAgreement(c *gin.Context) {
	a, err := h.agreements.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(a))
}

// UpdateStatus godoc
// @Summary      Change agreement status
// @Description  pending -> active|cancelled, active -> completed|cancelled. Completed and cancelled are final.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      string                       true  "Agreement id"
// @Param        request  body      request.UpdateStatusRequest  true  "New status"
// @Success      200      {object}  response.AgreementResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /agreements/{id}/status [patch]
func (h *AgreementHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	a, err := h.agreements.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(a))
}

// SendEmails godoc
// @Summary      Send confirmation emails
// @Description  Emails the agreement to the client (plus any extra recipients) and notifies the company inbox.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      string                     true   "Agreement id"
// @Param        request  body      request.SendEmailsRequest  false  "Extra recipients"
// @Success      200      {object}  response.AgreementResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /agreements/{id}/emails [post]
func (h *AgreementHandler) SendEmails(c *gin.Context) {
	var payload request.SendEmailsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeAppError(c, errInvalidPayload)
			return
		}
	}
	a, err := h.notifications.SendConfirmation(c.Request.Context(), c.Param("id"), payload.ResolveRecipients())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(a))
}

// ListRenewals godoc
// @Summary      Agreements due for renewal
// @Description  Active agreements renewing within the window that have not had a reminder.
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        days  query     int  false  "Window in days (default 30)"
// @Success      200   {array}   response.AgreementSummaryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /agreements/renewals [get]
func (h *AgreementHandler) ListRenewals(c *gin.Context) {
	window := usecase.RenewalWindow
	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			writeAppError(c, errInvalidWindow)
			return
		}
		window = time.Duration(days) * 24 * time.Hour
	}
	list, err := h.agreements.DueForRenewal(c.Request.Context(), window)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreementSummaries(list))
}

package handlers

import (
	"errors"
	"net/http"

	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/usecase"
	"cfp_agreements/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

func mapDomainError(err error) *pkg.AppError {
	var (
		validation *apperr.ValidationError
		constraint *apperr.ConstraintError
		notFound   *apperr.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "One or more fields are invalid", http.StatusBadRequest).
			WithDetails(validation.Fields)
	case errors.Is(err, usecase.ErrInvalidDraftToken):
		return pkg.NewDomainErrorSimple("INVALID_DRAFT_TOKEN", "Invalid draft token", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAgreementID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &constraint):
		return pkg.NewDomainErrorSimple("CONSTRAINT_VIOLATION", constraint.Error(), http.StatusUnprocessableEntity).
			WithDetails([]apperr.FieldError{{Field: constraint.Field, Reason: constraint.Reason}})
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAgreementNotFound):
		return pkg.NewDomainErrorSimple("AGREEMENT_NOT_FOUND", "Agreement not found", http.StatusNotFound)
	case errors.As(err, &notFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", notFound.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftAlreadySubmitted):
		return pkg.NewDomainErrorSimple("DRAFT_ALREADY_SUBMITTED", "Draft has already been submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoRecipients):
		return pkg.NewDomainErrorSimple("NO_RECIPIENTS", "No email recipients", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrReferenceExhausted):
		return pkg.NewDomainError("REFERENCE_UNAVAILABLE", "Could not allocate a contract reference, retry", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// writeError maps err and writes it, logging failures that are the
// service's fault.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := mapDomainError(err)
	if appErr.IsServerError() {
		logger.Error("[http][handler] request failed",
			zap.String("route", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

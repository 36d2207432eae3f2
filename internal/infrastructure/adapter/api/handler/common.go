package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/dto"
)

// respondError maps domain errors onto HTTP statuses: validation 400,
// missing identity 401, missing role 403, not-found 404, already-decided
// 409, everything else 500 with the detail kept server-side.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	var details map[string]any

	var fundsErr *domainerr.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		details = map[string]any{
			"required_cents":  fundsErr.RequiredCents,
			"available_cents": fundsErr.AvailableCents,
		}
	}

	switch {
	case errors.Is(err, domainerr.ErrInvalidCredentials),
		errors.Is(err, domainerr.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domainerr.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case domainerr.IsAlreadyDecidedError(err):
		status = http.StatusConflict
		message = err.Error()
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		fields := map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		}
		if detailed, ok := err.(interface{ LogFields() map[string]any }); ok {
			for k, v := range detailed.LogFields() {
				fields[k] = v
			}
		}
		logger.Error("Request failed", fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
		Details: details,
	})
}

// respondBadRequest reports a malformed request body
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matchahub/matcha_hub/pkg/errors"
	"github.com/matchahub/matcha_hub/pkg/logger"
)

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// respondError maps application error codes onto HTTP statuses. Internal
// failures are logged and returned as a generic message.
func respondError(c *gin.Context, err error) {
	code := errors.CodeOf(err)

	var status int
	switch code {
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeAlreadyExists:
		status = http.StatusConflict
	case errors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		status = http.StatusForbidden
	case errors.ErrCodeValidation, errors.ErrCodeValidationFailed:
		status = http.StatusBadRequest
	case errors.ErrCodeInsufficientFunds:
		status = http.StatusPaymentRequired
	case errors.ErrCodeRateLimitExceeded:
		status = http.StatusTooManyRequests
	default:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "path", c.FullPath(), "error", err)
		message = "something went wrong"
	}

	c.JSON(status, gin.H{"error": message, "code": code})
}

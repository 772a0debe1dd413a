package httputil

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/pkg/errors"
)

// MessageResponse is the success envelope for create and delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope for every handled error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithMessage sends a {message} envelope with the given status.
func RespondWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// RespondWithList sends the resource list as a bare JSON array.
func RespondWithList(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondWithError converts an application error to an {error} envelope
// with the matching status code.
func RespondWithError(c *gin.Context, err error) {
	var status int
	message := "internal server error"

	switch errors.CodeOf(err) {
	case errors.ErrValidation, errors.ErrInvalidIdentity:
		status = http.StatusBadRequest
	case errors.ErrNotFound:
		status = http.StatusNotFound
	case errors.ErrConflict:
		status = http.StatusConflict
	case errors.ErrRegistryUnavailable:
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	// Expose the classification message only, never wrapped driver errors.
	var appErr *errors.AppError
	if status != http.StatusInternalServerError && stderrors.As(err, &appErr) {
		message = appErr.Message
	}

	c.JSON(status, ErrorResponse{Error: message})
}

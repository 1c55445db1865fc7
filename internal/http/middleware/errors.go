package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
)

// StatusFor maps the domain error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsConflict(err):
		return http.StatusConflict
	case domain.IsForbidden(err):
		return http.StatusForbidden
	case domain.IsApplication(err):
		return http.StatusUnprocessableEntity
	case domain.IsTransport(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody builds the failure envelope. Field errors are listed under
// "errors"; internal errors never leak their cause.
func ErrorBody(c *gin.Context, status int, err error) gin.H {
	body := gin.H{
		"status":     false,
		"message":    err.Error(),
		"request_id": GetRequestID(c),
	}
	var fields domain.ValidationErrors
	if errors.As(err, &fields) {
		body["message"] = "validation failed"
		body["errors"] = fields
	}
	var single domain.ValidationError
	if errors.As(err, &single) && single.Field != "" {
		body["errors"] = domain.ValidationErrors{single.Field: single.Msg}
	}
	if status == http.StatusInternalServerError {
		body["message"] = "internal error"
	}
	return body
}

// Abort stops the chain with the error envelope.
func Abort(c *gin.Context, err error) {
	status := StatusFor(err)
	c.AbortWithStatusJSON(status, ErrorBody(c, status, err))
}

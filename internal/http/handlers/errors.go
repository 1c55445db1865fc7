package handlers

import (
	"github.com/gin-gonic/gin"

	"schooladmin/internal/http/middleware"
	"schooladmin/internal/utils"
)

// RespondDomainError maps domain errors to HTTP responses. Server-side
// failures are logged with the request id; the client gets a generic message.
func RespondDomainError(c *gin.Context, err error) {
	status := middleware.StatusFor(err)
	if status >= 500 {
		utils.Log.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("request failed")
	}
	c.JSON(status, middleware.ErrorBody(c, status, err))
}

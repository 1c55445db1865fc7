package handlers

import (
	"github.com/gin-gonic/gin"
)

// GetBookingReceipt returns the booking receipt PDF (inline).
func (h *Handler) GetBookingReceipt(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	body, filename, err := h.docsService(c).GenerateReceipt(c.Request.Context(), caller(c).SchoolID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	pdf(c, filename, body)
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "schooladmin/internal/config"
)

// Health reports liveness and whether the amendment journal database
// answers.
func Health(c *gin.Context) {
	journal := "disabled"
	if intconfig.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		journal = "ok"
		if err := intconfig.DB.PingContext(ctx); err != nil {
			journal = "unreachable"
		}
	}
	respond(c, http.StatusOK, "schooladmin gateway running", gin.H{"journal": journal})
}

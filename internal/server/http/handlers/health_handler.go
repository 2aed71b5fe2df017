package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectkrs/krs/internal/server/http/dto"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{OK: false, Message: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{OK: true})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/projectkrs/krs/internal/domain/errors"
)

// SelfieHandler serves the upload directory listing and file contents.
type SelfieHandler struct {
	facade SelfieFacade
}

// NewSelfieHandler constructs SelfieHandler.
func NewSelfieHandler(facade SelfieFacade) *SelfieHandler {
	return &SelfieHandler{facade: facade}
}

// List handles GET /list_selfies.
func (h *SelfieHandler) List(c *gin.Context) {
	names, err := h.facade.Selfies()
	if err != nil {
		internalError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// Get handles GET /selfie/:name. Invalid names are reported exactly like missing files.
func (h *SelfieHandler) Get(c *gin.Context) {
	path, err := h.facade.SelfiePath(c.Param("name"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) || errors.Is(err, domainErrors.ErrInvalidFilename) {
			notFound(c)
			return
		}
		internalError(c, err)
		return
	}
	serveFile(c, path)
}

package handlers

import (
	"errors"
	"math"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/projectkrs/krs/internal/server/http/dto"
)

const (
	messageNotFound = "Not found"
	messageInternal = "internal server error"
)

// parseForm reads the request body as a form using the engine's multipart memory limit.
// Non-multipart bodies are left to the urlencoded parser.
func parseForm(c *gin.Context) error {
	if _, err := c.MultipartForm(); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// parseTotal coerces a submitted amount. Absent, malformed, negative or non-finite input yields 0.
func parseTotal(raw string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return 0
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.StatusResponse{OK: false, Message: messageInternal})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: messageNotFound})
}

// serveFile streams path with content type, range and conditional request support.
// It does not redirect */index.html the way http.ServeFile does.
func serveFile(c *gin.Context, path string) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			notFound(c)
			return
		}
		internalError(c, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		internalError(c, err)
		return
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

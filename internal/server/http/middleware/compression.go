package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip encoded request bodies so form parsing sees plain bytes.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gzipEncoded(c.GetHeader("Content-Encoding")) {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "message": "invalid gzip body"})
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.Header.Del("Content-Length")
		c.Request.ContentLength = -1
		c.Next()
	}
}

func gzipEncoded(header string) bool {
	for _, enc := range strings.Split(header, ",") {
		switch strings.ToLower(strings.TrimSpace(enc)) {
		case "gzip", "x-gzip":
			return true
		}
	}
	return false
}

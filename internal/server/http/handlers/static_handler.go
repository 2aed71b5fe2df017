package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const indexDocument = "index.html"

// StaticHandler serves the frontend bundle and falls back to its index document.
type StaticHandler struct {
	root string
}

// NewStaticHandler constructs StaticHandler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{root: dir}
}

// Serve is installed as the NoRoute handler.
func (h *StaticHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		notFound(c)
		return
	}

	if file, ok := h.resolve(c.Request.URL.Path); ok {
		serveFile(c, file)
		return
	}
	if index, ok := h.regularFile(filepath.Join(h.root, indexDocument)); ok {
		serveFile(c, index)
		return
	}
	notFound(c)
}

// resolve maps a URL path onto the bundle. Directories resolve to their index document.
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	if h.root == "" {
		return "", false
	}
	candidate := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(candidate)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		return h.regularFile(filepath.Join(candidate, indexDocument))
	}
	return candidate, info.Mode().IsRegular()
}

func (h *StaticHandler) regularFile(file string) (string, bool) {
	if h.root == "" {
		return "", false
	}
	info, err := os.Stat(file)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return file, true
}

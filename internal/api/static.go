package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// contentTypes maps file extensions to the Content-Type header the static
// handler sends explicitly instead of relying on sniffing.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".svg":  "image/svg+xml",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".ico":  "image/x-icon",
}

// StaticHandler serves the generated public page, the admin page, and
// supporting assets from the site directory.
type StaticHandler struct {
	siteDir    string
	outputPath string
}

// NewStaticHandler creates a handler rooted at the site directory.
// outputPath is the generated index page served at GET /.
func NewStaticHandler(siteDir, outputPath string) *StaticHandler {
	return &StaticHandler{siteDir: siteDir, outputPath: outputPath}
}

// safePath validates the request path (no traversal) and returns the
// absolute path under the site directory.
func (h *StaticHandler) safePath(name string) (string, error) {
	cleaned := filepath.Clean("/" + name)
	abs := filepath.Join(h.siteDir, cleaned)
	if !strings.HasPrefix(abs, filepath.Clean(h.siteDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes site directory")
	}
	return abs, nil
}

// Index handles GET /, serving the generated page.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, h.outputPath)
}

// Admin handles GET /admin, serving the admin panel page.
func (h *StaticHandler) Admin(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, filepath.Join(h.siteDir, "admin.html"))
}

// File handles GET /* for assets under the site directory.
func (h *StaticHandler) File(w http.ResponseWriter, r *http.Request) {
	abs, err := h.safePath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.serveFile(w, r, abs)
}

func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, abs string) {
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(abs))]; ok {
		w.Header().Set("Content-Type", ct)
	}
	http.ServeFile(w, r, abs)
}

// Package fileserver serves a directory tree read-only over HTTP and stamps
// a fixed header set onto every response.
package fileserver

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/sabania/framesrv/internal/domain"
)

const indexPage = "/index.html"

// Handler serves files and directory listings from a root directory.
type Handler struct {
	root  http.FileSystem
	files http.Handler
}

// New returns a handler serving root with headers appended to every response.
func New(root string, headers domain.HeaderSet) http.Handler {
	return WithHeaders(NewHandler(root), headers)
}

// NewHandler returns the bare file handler without header injection.
func NewHandler(root string) *Handler {
	dir := http.Dir(root)
	return &Handler{
		root:  dir,
		files: http.FileServer(dir),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if strings.HasSuffix(r.URL.Path, indexPage) {
		h.serveIndex(w, r)
		return
	}

	h.files.ServeHTTP(w, r)
}

// serveIndex answers explicit ".../index.html" requests with the file itself;
// http.FileServer would redirect them to the parent directory.
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)

	f, err := h.root.Open(name)
	if err != nil {
		serveError(w, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		serveError(w, err)
		return
	}
	if info.IsDir() {
		h.files.ServeHTTP(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func serveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, "404 page not found", http.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		http.Error(w, "403 Forbidden", http.StatusForbidden)
	default:
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
	}
}

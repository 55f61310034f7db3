package fileserver

import (
	"io"
	"net/http"

	"github.com/sabania/framesrv/internal/domain"
)

// headerWriter appends a fixed header set right before the status line goes
// out, after whatever the wrapped handler has already set.
type headerWriter struct {
	http.ResponseWriter
	headers     domain.HeaderSet
	wroteHeader bool
}

func (w *headerWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.headers.AppendTo(w.ResponseWriter.Header())
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *headerWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(p)
}

// ReadFrom commits the headers, then hands the copy to the underlying
// writer so net/http can still use sendfile for file bodies.
func (w *headerWriter) ReadFrom(r io.Reader) (int64, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if rf, ok := w.ResponseWriter.(io.ReaderFrom); ok {
		return rf.ReadFrom(r)
	}
	return io.Copy(w.ResponseWriter, r)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *headerWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// WithHeaders wraps next so every response carries headers, whatever its status.
func WithHeaders(next http.Handler, headers domain.HeaderSet) http.Handler {
	if len(headers) == 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &headerWriter{ResponseWriter: w, headers: headers}
		next.ServeHTTP(hw, r)
		if !hw.wroteHeader {
			// Handler returned without writing anything; net/http will send an
			// implicit 200, so commit it here with the headers attached.
			hw.WriteHeader(http.StatusOK)
		}
	})
}

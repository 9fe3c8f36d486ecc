package middlewares

import (
	"io"
	"net/http"
	"orca-service/internal/pkg/constvars"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

var compressibleContentTypes = []string{
	constvars.MIMEApplicationJSON,
	constvars.MIMETextPlain,
	"text/html",
	"text/css",
	"text/javascript",
}

// Compressor negotiates br, gzip or deflate for JSON and text responses.
// XLSX downloads are already zipped and pass through untouched.
func (m *Middlewares) Compressor() func(http.Handler) http.Handler {
	compressor := middleware.NewCompressor(compressionLevel, compressibleContentTypes...)
	compressor.SetEncoder(constvars.StrBr, func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return compressor.Handler
}

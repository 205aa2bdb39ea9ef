package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Brotli compresses response bodies for clients that accept "br".
func Brotli(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsBrotli(r) {
			next.ServeHTTP(w, r)
			return
		}

		bw := brotli.NewWriterLevel(w, brotli.DefaultCompression)
		defer bw.Close()

		w.Header().Set("Content-Encoding", "br")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")

		next.ServeHTTP(&brotliResponseWriter{ResponseWriter: w, Writer: bw}, r)
	})
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		if strings.TrimSpace(strings.SplitN(enc, ";", 2)[0]) == "br" {
			return true
		}
	}
	return false
}

type brotliResponseWriter struct {
	http.ResponseWriter
	io.Writer
}

func (w *brotliResponseWriter) Write(p []byte) (int, error) {
	return w.Writer.Write(p)
}

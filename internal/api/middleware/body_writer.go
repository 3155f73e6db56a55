package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

// responseBodyWriter 在写出响应的同时保留一份副本，limit 为 0 时不限制
type responseBodyWriter struct {
	gin.ResponseWriter
	body  *bytes.Buffer
	limit int
}

func newResponseBodyWriter(w gin.ResponseWriter, limit int) *responseBodyWriter {
	return &responseBodyWriter{ResponseWriter: w, body: &bytes.Buffer{}, limit: limit}
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	r.capture(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) WriteString(s string) (int, error) {
	r.capture([]byte(s))
	return r.ResponseWriter.WriteString(s)
}

func (r *responseBodyWriter) capture(b []byte) {
	if r.limit <= 0 {
		r.body.Write(b)
		return
	}
	if remain := r.limit - r.body.Len(); remain > 0 {
		r.body.Write(b[:min(len(b), remain)])
	}
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

package logger

import (
	log "log/slog"
	"net/http"
	"time"
)

// StorageTransport 记录对象存储的 HTTP 调用，不读取请求体与响应体
type StorageTransport struct {
	Transport http.RoundTripper
}

func NewStorageTransport(next http.RoundTripper) *StorageTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &StorageTransport{Transport: next}
}

func (t *StorageTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("path", req.URL.Path),
		log.Int64("req_size", req.ContentLength),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "Storage Error", append(fields, log.Any("err", err))...)
		return nil, err
	}

	fields = append(fields, log.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		log.ErrorContext(req.Context(), "Storage Error", fields...)
	case elapsed > 500*time.Millisecond:
		log.WarnContext(req.Context(), "Storage Slow", fields...)
	default:
		log.DebugContext(req.Context(), "Storage", fields...)
	}

	return resp, nil
}

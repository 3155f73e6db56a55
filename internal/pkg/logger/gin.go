package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		SkipPaths: []string{"/ping", "/metrics"},
		Formatter: func(p gin.LogFormatterParams) string {
			var traceID string
			if p.Keys != nil {
				if id, ok := p.Keys[TraceIDKey].(string); ok {
					traceID = id
				}
			}

			if traceID == "" && p.Request != nil {
				if id, ok := p.Request.Context().Value(TraceIDKey).(string); ok {
					traceID = id
				}
			}

			var userID uint64
			if p.Keys != nil {
				if id, ok := p.Keys["user_id"].(uint64); ok {
					userID = id
				}
			}

			return fmt.Sprintf(
				`{"time":"%s","level":"INFO","msg":"GIN_ACCESS","trace_id":"%s","user_id":%d,"client_ip":"%s","method":"%s","path":"%s","status":%d,"latency":"%v","size":%d}`+"\n",
				p.TimeStamp.Format(time.RFC3339),
				traceID,
				userID,
				p.ClientIP,
				p.Method,
				p.Path,
				p.StatusCode,
				p.Latency,
				p.BodySize,
			)
		},
	}))

	r.Use(gin.Recovery())
}

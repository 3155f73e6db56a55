package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const auditBodyLimit = 16384

var redactedFields = []string{"password", "password1", "password2"}

// AuditMiddleware 记录所有写操作的请求与结果，表单中的密码会被脱敏
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		reqBody := auditRequestBody(c)

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", reqBody),
		)

		w := newResponseBodyWriter(c.Writer, auditBodyLimit)
		c.Writer = w
		startTime := time.Now()

		c.Next()

		attrs := []any{
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
		}
		// HTML 页面不记录响应体
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), gin.MIMEJSON) {
			attrs = append(attrs, log.String("res_body", w.body.String()))
		}
		if location := c.Writer.Header().Get("Location"); location != "" {
			attrs = append(attrs, log.String("location", location))
		}
		log.InfoContext(ctx, "Send Response", attrs...)
	}
}

func auditRequestBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	contentType := c.ContentType()
	if contentType == gin.MIMEMultipartPOSTForm {
		return "<multipart>"
	}

	// 只预读前 auditBodyLimit 字节，其余部分留给 handler 流式读取
	body := c.Request.Body
	reqBody, _ := io.ReadAll(io.LimitReader(body, auditBodyLimit))
	c.Request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(reqBody), body), body}

	if contentType != gin.MIMEPOSTForm {
		return string(reqBody)
	}
	values, err := url.ParseQuery(string(reqBody))
	if err != nil {
		return "<unparsable form>"
	}
	for _, field := range redactedFields {
		if values.Has(field) {
			values.Set(field, "***")
		}
	}
	return values.Encode()
}

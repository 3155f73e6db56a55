package middleware

import (
	"Yatube/internal/pkg/cache"
	"Yatube/internal/pkg/metrics"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CachePage 缓存整页 GET 响应，按请求 URI 与访问者区分；过期前不感知数据变化
func CachePage(store cache.PageStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || ttl <= 0 {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := c.Request.URL.RequestURI() + "|" + CurrentViewer(c).CacheKey()

		page, ok, err := store.Get(ctx, key)
		if err != nil {
			log.WarnContext(ctx, "page cache get failed", "key", key, "err", err)
		}
		if ok {
			metrics.RecordCacheHit()
			c.Header("X-Cache", "HIT")
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}
		metrics.RecordCacheMiss()

		w := newResponseBodyWriter(c.Writer, 0)
		c.Writer = w

		c.Next()

		if w.Status() != http.StatusOK {
			return
		}
		page = &cache.Page{
			Status:      w.Status(),
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		}
		if err = store.Set(ctx, key, page, ttl); err != nil {
			log.WarnContext(ctx, "page cache set failed", "key", key, "err", err)
		}
	}
}

package middleware

import (
	"Yatube/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// StaffRequired 后台接口只对管理员开放
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := CurrentViewer(c)
		if !viewer.IsAuthenticated() {
			response.Fail(c, response.Unauthorized, "authentication required")
			c.Abort()
			return
		}

		if !viewer.IsStaff {
			response.Fail(c, response.Forbidden, "permission denied: staff only")
			c.Abort()
			return
		}

		c.Next()
	}
}

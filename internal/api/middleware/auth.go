package middleware

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/security"
	"Yatube/internal/pkg/util"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware 解析会话 Token（Cookie 优先，其次 Bearer），失败时按游客处理
func SessionMiddleware(tokens *security.TokenManager, revocation security.Revocation, cookieName string, staff []string) gin.HandlerFunc {
	staffSet := make(map[string]struct{}, len(staff))
	for _, name := range staff {
		staffSet[name] = struct{}{}
	}

	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c, cookieName)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		revoked, err := revocation.IsRevoked(c.Request.Context(), tokenString)
		if err != nil {
			log.WarnContext(c.Request.Context(), "check token revocation failed", "err", err)
			c.Next()
			return
		}
		if revoked {
			c.Next()
			return
		}

		_, isStaff := staffSet[claims.Username]
		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.UsernameKey, claims.Username)
		c.Set(consts.IsStaffKey, isStaff)
		c.Set(consts.ViewerKey, &dto.Viewer{
			ID:       claims.UserID,
			Username: claims.Username,
			IsStaff:  isStaff,
		})

		c.Next()
	}
}

// TokenFromRequest 读取会话 Token
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// CurrentViewer 游客返回 nil
func CurrentViewer(c *gin.Context) *dto.Viewer {
	if v, ok := c.Get(consts.ViewerKey); ok {
		if viewer, ok := v.(*dto.Viewer); ok {
			return viewer
		}
	}
	return nil
}

// LoginRequired 游客重定向到登录页，并带上原始地址
func LoginRequired(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentViewer(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, util.LoginRedirect(loginURL, c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

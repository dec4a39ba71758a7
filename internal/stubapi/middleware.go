package stubapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/session"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestID    = "rid"
	ctxAdmin        = "admin"
)

// RequestID reuses the caller's X-Request-ID or mints one, and echoes it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxRequestID, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		attrs := []any{
			"request_id", c.GetString(ctxRequestID),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"dur", time.Since(start),
		}
		if admin := GetAdmin(c); admin != nil {
			attrs = append(attrs, "admin_id", admin.ID)
		}
		log.Info("http request", attrs...)
	}
}

// Auth accepts only bearer tokens minted by issuer for a console role.
func Auth(issuer *session.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
			return
		}

		admin, err := issuer.Parse(header[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid token"))
			return
		}

		switch admin.Role {
		case session.RoleSuperAdmin, session.RoleAdmin, session.RoleManager:
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("Admin access required"))
			return
		}
		c.Set(ctxAdmin, admin)
		c.Next()
	}
}

func GetAdmin(c *gin.Context) *session.Admin {
	v, _ := c.Get(ctxAdmin)
	a, _ := v.(*session.Admin)
	return a
}

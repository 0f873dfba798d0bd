package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

const (
	// ScoutKeyHeader carries the per-driver opaque Scout API key.
	ScoutKeyHeader = "X-API-Key"

	// DriverContextKey is where DriverAuth stores the authenticated driver.
	DriverContextKey = "auth_driver"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	AdminAPIKeys []string
}

var scoutKeyRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// DriverAuth authenticates a driver by Scout API key and stores the driver
// row in the request context.
func DriverAuth(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(ScoutKeyHeader))
		if !scoutKeyRe.MatchString(key) {
			unauthorized(c, "Missing or malformed API key")
			return
		}

		driver, err := s.GetDriverByScoutKey(c.Request.Context(), key)
		if err != nil {
			logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"code": "internal_error", "message": "Authentication lookup failed"},
			})
			return
		}
		if driver == nil {
			unauthorized(c, "Unknown API key")
			return
		}

		c.Set(DriverContextKey, driver)
		c.Next()
	}
}

// AdminAuth authenticates operators via "Authorization: ApiKey <key>".
func AdminAuth(cfg AuthConfig) gin.HandlerFunc {
	valid := make(map[string]bool, len(cfg.AdminAPIKeys))
	for _, key := range cfg.AdminAPIKeys {
		if key != "" {
			valid[key] = true
		}
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "apikey") {
			unauthorized(c, "Missing admin credential")
			return
		}
		if len(valid) == 0 || !valid[parts[1]] {
			logger.Warn("Admin authentication failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"code": "forbidden", "message": "Admin access denied"},
			})
			return
		}
		c.Next()
	}
}

// DriverFromContext returns the driver stored by DriverAuth.
func DriverFromContext(c *gin.Context) *schema.Driver {
	value, ok := c.Get(DriverContextKey)
	if !ok {
		return nil
	}
	driver, _ := value.(*schema.Driver)
	return driver
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"code": "unauthorized", "message": message},
	})
}

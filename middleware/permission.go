package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/code"
	"github.com/punura-itd/CIC-AGRI-IMS/internal/error/response"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// RequirePermission gates a route on one capability. The raw role string from
// the token is normalized first, so upstream aliases and unknown roles get
// the same treatment everywhere.
func RequirePermission(permission models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawRole, _ := c.Get("role")
		roleStr, _ := rawRole.(string)

		role := models.NormalizeRole(roleStr)
		if !models.HasPermission(role, permission) {
			response.FailWithMessage(c, code.ErrPermissionDenied,
				"insufficient permissions: requires "+string(permission), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAnyPermission gates a route on at least one of several capabilities
func RequireAnyPermission(permissions ...models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawRole, _ := c.Get("role")
		roleStr, _ := rawRole.(string)

		role := models.NormalizeRole(roleStr)
		if !models.HasAnyPermission(role, permissions...) {
			response.Fail(c, code.ErrPermissionDenied, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

package routes

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"

	"educa_taxista/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdminEnrollments = "/admin/enrollments"

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdminEnrollments, adminTokenMiddleware())
	{
		admin.GET("", adminHandler.ListEnrollments)
		admin.GET("/:enrollment_id", adminHandler.GetEnrollment)
		admin.POST("/:enrollment_id/reset-password", adminHandler.ResetPassword)
		admin.PATCH("/:enrollment_id/status", adminHandler.OverrideStatus)
		admin.DELETE("/:enrollment_id", adminHandler.DeleteEnrollment)
	}
}

// adminTokenMiddleware guards the admin routes with a static token from
// ADMIN_API_TOKEN. When the variable is unset every admin request is refused.
func adminTokenMiddleware() gin.HandlerFunc {
	token := os.Getenv("ADMIN_API_TOKEN")
	if token == "" {
		log.Printf("[routes][admin] ADMIN_API_TOKEN not set, admin routes disabled")
	}

	return func(c *gin.Context) {
		got := c.GetHeader("X-Admin-Token")
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "invalid admin token"})
			return
		}
		c.Next()
	}
}

package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/http/handlers"
	"github.com/Cheskazzzz/portal-master/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, adh *handlers.AdminHandlers, aph *handlers.AppointmentHandlers, guard *middleware.AccessGuard) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.GET("/session", ah.Session)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.GET("/verify-email", ah.VerifyEmail)

	v := r.Group("/").Use(guard.RequireAuth())
	v.POST("/auth/logout", ah.Logout)
	v.POST("/auth/change-password", ah.ChangePassword)
	v.GET("/appointments", aph.List)
	v.POST("/appointments", aph.Create)
	v.DELETE("/appointments/:id", aph.Delete)

	adm := r.Group("/admin").Use(guard.RequireAuth(), guard.RequireRole(domain.RoleAdmin))
	adm.GET("/users", adh.ListUsers)
	adm.POST("/users", adh.CreateUser)
	adm.PATCH("/users/:id", adh.UpdateUser)
	adm.DELETE("/users/:id", adh.DeleteUser)
	adm.GET("/logs", adh.Logs)

	return r
}

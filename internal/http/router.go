package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/tradeops/internal/http/handlers"
)

// BuildRouter wires all routes. Auth endpoints and the full catalog listing
// are public; everything else sits behind the bearer-token middleware.
func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.ProductHandlers, anh *handlers.AnalysisHandlers, authmw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)

	// Public catalog listing, reachable under both historical paths.
	r.GET("/products/all", ph.ListAll)
	r.GET("/admin/all", ph.ListAll)

	v := r.Group("/", authmw)
	v.GET("/users", ah.ListUsers)
	v.GET("/products", ph.List)
	v.POST("/products", ph.Create)
	v.GET("/products/:id", ph.Get)
	v.PUT("/products/:id", ph.Update)
	v.DELETE("/products/:id", ph.Delete)
	v.GET("/analyze/:sector", anh.Analyze)

	return r
}

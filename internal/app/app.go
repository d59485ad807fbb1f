package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/tradeops/internal/config"
	httpx "github.com/you/tradeops/internal/http"
	"github.com/you/tradeops/internal/http/handlers"
	"github.com/you/tradeops/internal/http/middleware"
)

// Run assembles the container, builds the router and serves until the
// listener fails.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.UserRepo)
	productH := handlers.NewProductHandlers(c.ProductRepo)
	analysisH := handlers.NewAnalysisHandlers(c.AnalysisSvc)

	r := httpx.BuildRouter(authH, productH, analysisH, middleware.AuthMiddleware(c.AuthSvc))

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

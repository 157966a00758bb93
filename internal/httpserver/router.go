package httpserver

import (
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	catalogsvc "storefront/internal/service/catalog"
	sessionsvc "storefront/internal/service/session"
)

// Deps collects the services the router exposes.
type Deps struct {
	Catalog  *catalogsvc.Service
	Session  *sessionsvc.Store
	Products ProductGateway
}

// buildRouter wires routes for the storefront API.
func buildRouter(deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.Catalog == nil || deps.Session == nil || deps.Products == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestIDMiddleware(), accessLogMiddleware(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = corsOrigins
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Products))

	router.POST("/login", loginHandler(deps.Session))
	router.GET("/session", sessionHandler(deps.Session))
	router.POST("/logout", authRequired(deps.Session), logoutHandler(deps.Session))

	router.GET("/catalog", catalogHandler(deps.Catalog))
	router.GET("/catalog/state", catalogStateHandler(deps.Catalog))
	router.GET("/products/:id", productHandler(deps.Products))

	return router, nil
}

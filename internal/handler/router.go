package handler

import (
	"net/http"

	"github.com/GlitchedDuck/Manager-hub/internal/middleware"
	"github.com/GlitchedDuck/Manager-hub/internal/observability"
	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	AllowOrigins []string
	// RequireAuth puts every /api route except login behind JWTAuth.
	RequireAuth bool
}

// NewRouter wires every route onto a fresh engine.
func NewRouter(svc *service.Services, auth *service.AuthService, tokens *middleware.Tokens, opts RouterOptions) *gin.Engine {
	origins := opts.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), observability.HTTPMetrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"X-New-Token", HeaderPersistenceWarning, middleware.HeaderRequestID},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/api/login", NewAuthHandler(auth, tokens).Login)
	api := r.Group("/api")
	if opts.RequireAuth {
		api.Use(tokens.JWTAuth())
	}
	NewRecordHandler(svc).Register(api)
	NewTeamHandler(svc.Roster).Register(api)
	NewReportHandler(svc).Register(api)
	return r
}

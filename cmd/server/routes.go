package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"talentpact.backend/internal/interfaces/http/handlers"
	"talentpact.backend/internal/interfaces/http/middleware"
	"talentpact.backend/pkg/metrics"
)

const (
	serviceName    = "talentpact-backend"
	serviceVersion = "0.1.0"
)

type routeDeps struct {
	projectHandler  *handlers.ProjectHandler
	contractHandler *handlers.ContractHandler
	authMiddleware  gin.HandlerFunc
	idempotency     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		projects := v1.Group("/projects")
		{
			projects.POST("", d.idempotency, d.projectHandler.CreateProject)
			projects.GET("", d.projectHandler.ListProjects)
			projects.GET("/categories", d.projectHandler.ListCategories)
			projects.GET("/client/:clientId", d.projectHandler.ListProjectsByClient)
			projects.GET("/:id", d.projectHandler.GetProject)
			projects.PUT("/:id", d.authMiddleware, d.projectHandler.UpdateProject)
			projects.DELETE("/:id", d.authMiddleware, d.projectHandler.DeleteProject)
		}

		contracts := v1.Group("/contracts")
		{
			contracts.POST("", d.idempotency, d.contractHandler.CreateContract)
			contracts.GET("/user/:userId", d.contractHandler.ListContractsByUser)
			contracts.GET("/status/:status", d.contractHandler.ListContractsByStatus)
			contracts.GET("/:id", d.contractHandler.GetContract)
			contracts.PUT("/:id/status", d.authMiddleware, d.contractHandler.UpdateContractStatus)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine, origins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader, middleware.IdempotencyHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-Idempotency-Hit"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine, reg *metrics.Registry) {
	r.GET("/metrics", gin.WrapH(reg.Handler()))
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"network-registry.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	networkHandler *handlers.NetworkHandler
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		networks := v1.Group("/networks")
		{
			networks.POST("", d.networkHandler.CreateNetwork)
			networks.GET("", d.networkHandler.ListNetworks)
			networks.GET("/:networkId", d.networkHandler.GetNetwork)
			networks.PUT("/:networkId", d.networkHandler.UpdateNetwork)
			networks.PATCH("/:networkId", d.networkHandler.PatchNetwork)
			networks.DELETE("/:networkId", d.networkHandler.DeleteNetwork)
			networks.GET("/:networkId/verify", d.networkHandler.VerifyNetwork)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "network-registry",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Correlation-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

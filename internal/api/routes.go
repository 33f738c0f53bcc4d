// Package api exposes the renderer over HTTP. Each request is one
// independent render; the handlers hold no state between calls.
package api

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the endpoints onto the engine.
func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/render", renderHandler)
	}
}

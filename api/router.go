package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlviRownok/Chess-Knight-Paths/api/handlers"
)

// SetupRouter wires the middleware stack and the pathfinding endpoints.
func SetupRouter(h *handlers.PathsHandler, allowedOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(RequestID(), CORSMiddleware(allowedOrigin), BrotliCompress())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	apiGroup.GET("/knightpaths", h.FindPaths)
	apiGroup.GET("/knightpaths/dot", h.FindPathsDOT)
	apiGroup.GET("/history", h.HistoryHandler)

	return router
}

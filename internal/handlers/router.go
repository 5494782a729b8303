package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the engine. Kept separate from the
// composition root so tests can assemble the exact production routing.
func RegisterRoutes(r *gin.Engine, players *PlayerHandler, health *HealthHandler) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "route not found")
	})

	r.GET("/healthz", health.Healthz)

	api := r.Group("/api/v1")
	{
		group := api.Group("/players")
		{
			group.GET("", players.ListPlayers)
			group.POST("", players.SubmitScore)
			group.GET("/:id", players.GetPlayer)
			group.PUT("/:id", players.UpdatePlayer)
			group.PUT("/:id/total", players.ApplyDelta)
			group.DELETE("/:id", players.DeletePlayer)
		}
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Tsurematsu/backendFall/internal/services"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with: a success flag plus
// either a payload or an error message.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Type alias so swag can resolve service models in annotations.
type LeaderboardEntry = services.LeaderboardEntry

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Success: false, Error: msg})
}

func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondError(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("leaderboard: %v", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

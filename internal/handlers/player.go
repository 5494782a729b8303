package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tsurematsu/backendFall/internal/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	leaderboard *services.LeaderboardService
}

func NewPlayerHandler(leaderboard *services.LeaderboardService) *PlayerHandler {
	return &PlayerHandler{leaderboard: leaderboard}
}

type SubmitScoreRequest struct {
	Name   string `json:"name" binding:"required" example:"ana"`
	Age    int    `json:"age" binding:"required" example:"21"`
	Career string `json:"career" binding:"required" example:"systems"`
	Reason string `json:"reason" example:"weekly challenge"`
}

type UpdatePlayerRequest struct {
	Total  *int   `json:"total" example:"10"`
	Reason string `json:"reason" example:"manual adjustment"`
}

type DeltaRequest struct {
	Action string `json:"action" binding:"required" example:"increment"`
	Reason string `json:"reason" example:"bonus round"`
}

type DeletePlayerRequest struct {
	Secret string `json:"secret" example:"change-me"`
}

// ListPlayers godoc
// @Summary      Full leaderboard
// @Description  Every player ordered by total descending, decorated with rank and medal
// @Tags         players
// @Produce      json
// @Success      200 {object} Response{data=[]LeaderboardEntry}
// @Failure      500 {object} Response
// @Router       /api/v1/players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	entries, err := h.leaderboard.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entries)
}

// GetPlayer godoc
// @Summary      Get one player
// @Description  One player with its rank (players tied on total share a rank)
// @Tags         players
// @Produce      json
// @Param        id path int true "Player ID"
// @Success      200 {object} Response{data=LeaderboardEntry}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Router       /api/v1/players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}

	entry, err := h.leaderboard.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entry)
}

// SubmitScore godoc
// @Summary      Submit a score
// @Description  Creates the player on first submission, increments the total on repeats. Names differing only in case or surrounding whitespace count as the same player.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        request body SubmitScoreRequest true "Submission"
// @Success      200 {object} Response{data=LeaderboardEntry}
// @Failure      400 {object} Response
// @Router       /api/v1/players [post]
func (h *PlayerHandler) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name, age and career are required")
		return
	}

	entry, err := h.leaderboard.CreateOrIncrement(req.Name, req.Age, req.Career, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entry)
}

// UpdatePlayer godoc
// @Summary      Update player fields
// @Description  Replaces the total and/or appends to the reason
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id path int true "Player ID"
// @Param        request body UpdatePlayerRequest true "Fields to update"
// @Success      200 {object} Response{data=LeaderboardEntry}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Router       /api/v1/players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.leaderboard.UpdateFields(id, req.Total, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entry)
}

// ApplyDelta godoc
// @Summary      Increment or decrement the total
// @Description  Adjusts the total by one in the given direction; totals may go negative
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id path int true "Player ID"
// @Param        request body DeltaRequest true "Delta"
// @Success      200 {object} Response{data=LeaderboardEntry}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Router       /api/v1/players/{id}/total [put]
func (h *PlayerHandler) ApplyDelta(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}

	var req DeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, `action must be "increment" or "decrement"`)
		return
	}

	entry, err := h.leaderboard.ApplyDelta(id, req.Action, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entry)
}

// DeletePlayer godoc
// @Summary      Delete a player
// @Description  Permanently removes a player. Requires the shared delete secret, in the body or the X-Delete-Secret header.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id path int true "Player ID"
// @Param        request body DeletePlayerRequest false "Delete secret"
// @Success      200 {object} Response{data=LeaderboardEntry}
// @Failure      400 {object} Response
// @Failure      401 {object} Response
// @Failure      404 {object} Response
// @Router       /api/v1/players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := playerID(c)
	if !ok {
		return
	}

	var req DeletePlayerRequest
	_ = c.ShouldBindJSON(&req)
	if req.Secret == "" {
		req.Secret = c.GetHeader("X-Delete-Secret")
	}
	if req.Secret == "" {
		respondError(c, http.StatusBadRequest, "secret is required")
		return
	}

	entry, err := h.leaderboard.Delete(id, req.Secret)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entry)
}

func playerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid player id")
		return 0, false
	}
	return uint(id), true
}

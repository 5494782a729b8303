package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200 {object} Response
// @Failure      500 {object} Response
// @Router       /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "database unavailable")
		return
	}
	respondOK(c, gin.H{"status": "ok"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunarly/cmd/api/dto"
	"lunarly/cmd/api/middleware"
	"lunarly/cmd/api/services"
)

// GetStatsHandler godoc
// @Summary      Get user statistics
// @Description  Returns the caller's dream and analysis counters. Counters are maintained best-effort and reconciled in the background.
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.StatsDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /stats [get]
func GetStatsHandler(svc *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CallerUID(c)
		stats, err := svc.Get(c.Request.Context(), uid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.StatsFromModel(stats))
	}
}

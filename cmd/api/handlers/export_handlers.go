package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lunarly/cmd/api/middleware"
	"lunarly/cmd/api/services"
)

// ExportDreamsHandler godoc
// @Summary      Export all dreams
// @Description  Returns every dream of the caller as a single downloadable JSON document.
// @Tags         export
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.ExportedDreamDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /export [get]
func ExportDreamsHandler(svc *services.ExportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CallerUID(c)
		dreams, err := svc.ExportDreams(c.Request.Context(), uid)
		if err != nil {
			respondError(c, err)
			return
		}

		filename := fmt.Sprintf("lunarly-dreams-%s.json", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.JSON(http.StatusOK, dreams)
	}
}

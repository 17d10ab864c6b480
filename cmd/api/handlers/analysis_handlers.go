package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunarly/apperr"
	"lunarly/cmd/api/dto"
	"lunarly/cmd/api/middleware"
	"lunarly/cmd/api/services"
)

// AnalyzeDreamHandler godoc
// @Summary      Analyze a dream
// @Description  Runs the AI analysis pipeline for one owned, not-yet-analyzed dream and persists the result.
// @Tags         analyses
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.AnalyzeDreamRequestDTO  true  "Dream to analyze"
// @Produce      json
// @Success      200  {object}  dto.AnalyzeDreamResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Failure      429  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /analyses [post]
func AnalyzeDreamHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerUID := middleware.CallerUID(c)

		var in dto.AnalyzeDreamRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, apperr.New(apperr.InvalidArgument, "invalid request body"))
			return
		}

		result, err := svc.AnalyzeDream(c.Request.Context(), callerUID, in.DreamID, in.UID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.AnalyzeDreamResponseDTO{
			AnalysisID: result.AnalysisID,
			Insights:   result.Insights,
			ModelUsed:  result.ModelUsed,
		})
	}
}

// GetAnalysisHandler godoc
// @Summary      Get analysis by id
// @Tags         analyses
// @Security     BearerAuth
// @Param        id   path   string  true  "Analysis ObjectID"
// @Produce      json
// @Success      200  {object}  dto.AnalysisDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /analyses/{id} [get]
func GetAnalysisHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CallerUID(c)
		analysis, err := svc.GetAnalysis(c.Request.Context(), uid, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AnalysisFromModel(analysis))
	}
}

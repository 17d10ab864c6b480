package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lunarly/apperr"
	"lunarly/cmd/api/dto"
	"lunarly/cmd/api/middleware"
	"lunarly/cmd/api/services"
)

// CreateDreamHandler godoc
// @Summary      Create a dream entry
// @Description  Records a new dream for the authenticated user and increments the dream counter.
// @Tags         dreams
// @Security     BearerAuth
// @Accept       json
// @Param        dream  body  dto.CreateDreamRequestDTO  true  "Dream entry"
// @Produce      json
// @Success      201  {object}  dto.DreamDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /dreams [post]
func CreateDreamHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CallerUID(c)

		var in dto.CreateDreamRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, apperr.New(apperr.InvalidArgument, "invalid request body"))
			return
		}

		dream, err := svc.Create(c.Request.Context(), uid, services.CreateDreamInput{
			Title: in.Title,
			Body:  in.Body,
			Date:  in.Date,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.DreamFromModel(dream))
	}
}

// ListDreamsHandler godoc
// @Summary      List dreams
// @Description  Lists the authenticated user's dreams, newest date first. Pass date=YYYY-MM-DD to limit to one calendar day.
// @Tags         dreams
// @Security     BearerAuth
// @Param        date  query  string  false  "Calendar day (YYYY-MM-DD)"
// @Produce      json
// @Success      200  {array}  dto.DreamDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /dreams [get]
func ListDreamsHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CallerUID(c)

		var day time.Time
		if raw := c.Query("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				respondError(c, apperr.New(apperr.InvalidArgument, "date must be YYYY-MM-DD"))
				return
			}
			day = parsed
		}

		dreams, err := svc.List(c.Request.Context(), uid, day)
		if err != nil {
			respondError(c, err)
			return
		}

		out := make([]dto.DreamDTO, 0, len(dreams))
		for i := range dreams {
			out = append(out, dto.DreamFromModel(&dreams[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetDreamHandler godoc
// @Summary      Get dream by id
// @Tags         dreams
// @Security     BearerAuth
// @Param        id   path   string  true  "Dream ObjectID"
// @Produce      json
// @Success      200  {object}  dto.DreamDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /dreams/{id} [get]
func GetDreamHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CallerUID(c)
		dream, err := svc.Get(c.Request.Context(), uid, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.DreamFromModel(dream))
	}
}

// UpdateDreamHandler godoc
// @Summary      Edit a dream
// @Description  Updates title, body, and/or date of an owned dream. Absent fields are unchanged.
// @Tags         dreams
// @Security     BearerAuth
// @Accept       json
// @Param        id     path  string                     true  "Dream ObjectID"
// @Param        dream  body  dto.UpdateDreamRequestDTO  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /dreams/{id} [put]
func UpdateDreamHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CallerUID(c)

		var in dto.UpdateDreamRequestDTO
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, apperr.New(apperr.InvalidArgument, "invalid request body"))
			return
		}

		err := svc.Update(c.Request.Context(), uid, c.Param("id"), services.UpdateDreamInput{
			Title: in.Title,
			Body:  in.Body,
			Date:  in.Date,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "dream updated"})
	}
}

// DeleteDreamHandler godoc
// @Summary      Delete a dream
// @Description  Deletes an owned dream and decrements the dream counter.
// @Tags         dreams
// @Security     BearerAuth
// @Param        id   path   string  true  "Dream ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /dreams/{id} [delete]
func DeleteDreamHandler(svc *services.DreamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := middleware.CallerUID(c)
		if err := svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "dream deleted"})
	}
}

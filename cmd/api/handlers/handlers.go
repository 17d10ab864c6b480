package handlers

import (
	"github.com/gin-gonic/gin"

	"lunarly/apperr"
	"lunarly/cmd/api/dto"
	"lunarly/internal/logger"
)

// respondError maps a service error to the uniform error response. An
// already-classified error keeps its kind; anything else is logged and
// surfaced as internal so details never leak to the caller.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		logger.Log.Errorf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(apperr.HTTPStatus(kind), dto.ErrorResponseDTO{
		Error:   string(kind),
		Message: apperr.MessageOf(err),
	})
}

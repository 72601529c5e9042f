package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/service"
	"github.com/jengzang/worldsynth/pkg/response"
)

// writeError maps service errors onto HTTP status codes
func writeError(c *gin.Context, message string, err error) {
	var cfgErr *planet.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		response.BadRequest(c, message, err)
	case errors.Is(err, service.ErrPresetNotFound):
		response.Error(c, http.StatusNotFound, message, err)
	case errors.Is(err, service.ErrBuiltinPreset):
		response.Error(c, http.StatusConflict, message, err)
	case errors.Is(err, context.DeadlineExceeded):
		response.Error(c, http.StatusGatewayTimeout, message, err)
	case errors.Is(err, context.Canceled):
		response.Error(c, http.StatusServiceUnavailable, message, err)
	default:
		response.InternalError(c, message, err)
	}
}

// bindOptionalJSON decodes the body into dst. An empty body leaves dst untouched.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

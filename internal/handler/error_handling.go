package handler

import (
	"context"
	"errors"
	"net/http"

	"canvas-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusClientClosedRequest is the nginx convention for a client that went away mid-request.
const statusClientClosedRequest = 499

// --- Error mapping ---

// handleServiceError maps service errors to HTTP responses.
// Error bodies always have the form {"detail": "..."}.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrSectionNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Detail: "Section not found"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		zap.L().Debug("Request cancelled before lookup", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.AbortWithStatus(statusClientClosedRequest)
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Internal Server Error"})
	}
}

// --- Request validation ---

// errSectionParamMissing is reported when the section query parameter is absent altogether.
var errSectionParamMissing = errors.New("query parameter 'section' is required")

// requireSectionParam rejects requests without a section parameter. A present
// but empty value passes and ends up as an unknown section.
func requireSectionParam(c *gin.Context) bool {
	if _, ok := c.GetQuery("section"); !ok {
		handleBindError(c, errSectionParamMissing)
		return false
	}
	return true
}

func handleBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, models.ErrorResponse{Detail: err.Error()})
}

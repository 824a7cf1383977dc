package handler

import (
	"net/http"

	"canvas-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdvisorHandler serves the canned advisor content under /api.
type AdvisorHandler struct {
	advisor service.AdvisorService
	logger  *zap.Logger
}

// NewAdvisorHandler wires the advisor service into HTTP handlers.
func NewAdvisorHandler(advisor service.AdvisorService, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisor: advisor,
		logger:  logger,
	}
}

// RegisterRoutes mounts the read-only advisor endpoints on /api.
func (h *AdvisorHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/questions", h.getQuestions)
		api.GET("/suggestions", h.getSuggestions)
		api.GET("/sections", h.listSections)
	}
}

// --- Handlers ---

// getQuestions: GET /api/questions?section=<id>
func (h *AdvisorHandler) getQuestions(c *gin.Context) {
	if !requireSectionParam(c) {
		return
	}

	var q questionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		handleBindError(c, err)
		return
	}

	// Blocks for the configured delay; ends early if the client goes away.
	resp, err := h.advisor.GetQuestions(c.Request.Context(), q.Section)
	recordLookup("questions", err)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getSuggestions: GET /api/suggestions?section=<id>&input=<text>
func (h *AdvisorHandler) getSuggestions(c *gin.Context) {
	if !requireSectionParam(c) {
		return
	}

	var q suggestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		handleBindError(c, err)
		return
	}

	resp, err := h.advisor.GetSuggestions(c.Request.Context(), q.Section, q.Input)
	recordLookup("suggestions", err)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listSections: GET /api/sections
func (h *AdvisorHandler) listSections(c *gin.Context) {
	resp, err := h.advisor.ListSections(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

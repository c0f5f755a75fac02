package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/futurefulfillmentdev/future-shipping/internal/application"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/errors"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/logging"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/middleware"
)

// RecommendationHandler handles HTTP requests for recommendations
type RecommendationHandler struct {
	service *application.AdvisorService
	logger  *logging.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(service *application.AdvisorService, logger *logging.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger,
	}
}

// GenerateRecommendation handles POST /api/v1/recommendations
func (h *RecommendationHandler) GenerateRecommendation(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	var cmd application.GenerateRecommendationCommand
	if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	result, err := h.service.GenerateRecommendation(c.Request.Context(), cmd)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			responder.RespondWithAppError(appErr)
		} else {
			responder.RespondInternalError(err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

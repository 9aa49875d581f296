package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"dineWise/domain"
	"dineWise/pkg/logger"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type RecommendationService interface {
	GetRecommendations(ctx context.Context, sessionID string, req domain.RecommendationRequest) (domain.RecommendationResponse, error)
}

type RecommendationHandler struct {
	recommendationService RecommendationService
	validator             *validator.Validate
	timeout               time.Duration
}

func NewRecommendationHandler(recommendationService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		validator:             validator.New(),
		timeout:               30 * time.Second,
	}
}

func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req domain.RecommendationRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID, _ := c.Get("session_id").(string)

	resp, err := h.recommendationService.GetRecommendations(ctx, sessionID, req)
	if err != nil {
		logger.Error("Failed to get recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

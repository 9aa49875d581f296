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

// ShareCodec encodes a saved search into an opaque token and back.
type ShareCodec interface {
	Encode(req domain.RecommendationRequest) (string, error)
	Decode(token string) (domain.RecommendationRequest, error)
}

type ShareHandler struct {
	codec                 ShareCodec
	recommendationService RecommendationService
	validator             *validator.Validate
	timeout               time.Duration
}

func NewShareHandler(codec ShareCodec, recommendationService RecommendationService) *ShareHandler {
	return &ShareHandler{
		codec:                 codec,
		recommendationService: recommendationService,
		validator:             validator.New(),
		timeout:               30 * time.Second,
	}
}

func (h *ShareHandler) Create(c echo.Context) error {
	var req domain.RecommendationRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate share request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	token, err := h.codec.Encode(req)
	if err != nil {
		logger.Error("Failed to create share token", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]interface{}{
		"token": token,
	}))
}

// Resolve decodes a share token and replays the saved search.
func (h *ShareHandler) Resolve(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing share token"})
	}

	req, err := h.codec.Decode(token)
	if err != nil {
		logger.Error("Failed to decode share token", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID, _ := c.Get("session_id").(string)

	results, err := h.recommendationService.GetRecommendations(ctx, sessionID, req)
	if err != nil {
		logger.Error("Failed to get recommendations for shared search", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"request": req,
		"results": results,
	}))
}

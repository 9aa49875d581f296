package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"dineWise/domain"
	"dineWise/pkg/logger"
	"dineWise/pkg/metrics"
)

// FeedbackRecorder appends one feedback record and returns the running total.
type FeedbackRecorder interface {
	Add(req domain.FeedbackRequest) int
}

// VariantFeedbackRecorder bumps the per-variant experiment counters.
type VariantFeedbackRecorder interface {
	RecordFeedback(variant string, isPositive bool)
}

type FeedbackHandler struct {
	feedbackLog FeedbackRecorder
	experiment  VariantFeedbackRecorder
	validator   *validator.Validate
}

func NewFeedbackHandler(feedbackLog FeedbackRecorder, experiment VariantFeedbackRecorder) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackLog: feedbackLog,
		experiment:  experiment,
		validator:   validator.New(),
	}
}

func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req domain.FeedbackRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate feedback request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	total := h.feedbackLog.Add(req)

	if req.Variant != "" {
		h.experiment.RecordFeedback(req.Variant, req.IsPositive)
	}

	sentiment := "negative"
	if req.IsPositive {
		sentiment = "positive"
	}
	metrics.FeedbackEvents.WithLabelValues(req.Variant, sentiment).Inc()

	resp := domain.FeedbackResponse{
		Status:        "recorded",
		TotalFeedback: total,
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(resp))
}

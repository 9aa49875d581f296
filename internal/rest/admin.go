package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"dineWise/business/recommendation"
	"dineWise/domain"
)

type AnalyticsService interface {
	Report() domain.AnalyticsReport
}

type FeedbackStatsProvider interface {
	Summary() domain.FeedbackSummary
}

type ExperimentService interface {
	Stats() domain.ExperimentStats
	Reset()
}

type CacheInspector interface {
	Stats() recommendation.CacheStats
	Clear()
}

// AdminHandler serves the operator endpoints: usage analytics, feedback
// stats, cache stats and the A/B experiment controls.
type AdminHandler struct {
	analytics  AnalyticsService
	feedback   FeedbackStatsProvider
	experiment ExperimentService
	cache      CacheInspector
}

func NewAdminHandler(analytics AnalyticsService, feedback FeedbackStatsProvider, experiment ExperimentService, cache CacheInspector) *AdminHandler {
	return &AdminHandler{
		analytics:  analytics,
		feedback:   feedback,
		experiment: experiment,
		cache:      cache,
	}
}

func (h *AdminHandler) Analytics(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.analytics.Report()))
}

func (h *AdminHandler) FeedbackStats(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.feedback.Summary()))
}

func (h *AdminHandler) CacheStats(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.cache.Stats()))
}

func (h *AdminHandler) ClearCache(c echo.Context) error {
	h.cache.Clear()
	return c.JSON(http.StatusOK, fres.Response.StatusOK("cache cleared"))
}

func (h *AdminHandler) ABTestResults(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.experiment.Stats()))
}

func (h *AdminHandler) ResetExperiment(c echo.Context) error {
	h.experiment.Reset()
	return c.JSON(http.StatusOK, fres.Response.StatusOK("experiment reset"))
}

package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"dineWise/pkg/logger"
)

// MetadataProvider lists the distinct cities and cuisines in the dataset.
type MetadataProvider interface {
	Metadata() (cities []string, cuisines []string, err error)
}

type MetadataHandler struct {
	dataset MetadataProvider
	version string
}

func NewMetadataHandler(dataset MetadataProvider, version string) *MetadataHandler {
	return &MetadataHandler{
		dataset: dataset,
		version: version,
	}
}

func (h *MetadataHandler) Metadata(c echo.Context) error {
	cities, cuisines, err := h.dataset.Metadata()
	if err != nil {
		logger.Error("Failed to load dataset metadata", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"cities":   cities,
		"cuisines": cuisines,
	}))
}

func (h *MetadataHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}

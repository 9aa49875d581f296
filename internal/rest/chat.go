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

type ChatService interface {
	Handle(ctx context.Context, sessionID, message string) (domain.ChatResponse, error)
}

type ChatHandler struct {
	chatService ChatService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewChatHandler(chatService ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validator:   validator.New(),
		timeout:     60 * time.Second,
	}
}

func (h *ChatHandler) Chat(c echo.Context) error {
	var req domain.ChatRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate chat request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID, _ := c.Get("session_id").(string)

	resp, err := h.chatService.Handle(ctx, sessionID, req.Message)
	if err != nil {
		logger.Error("Failed to handle chat message", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

package chatmessage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hotel-concierge/internal/chat"
	apperrors "hotel-concierge/internal/common/errors"
	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/models"

	"github.com/labstack/echo/v4"
)

const Endpoint = "chat-message"

type Responder interface {
	Respond(ctx context.Context, message string) (*chat.Reply, error)
}

type Handler struct {
	config   *Config
	engine   Responder
	renderer chat.Renderer
	errors   *apperrors.ErrorHandler
	logger   logger.Logger
}

func NewHandler(config *Config, engine Responder, log logger.Logger) (*Handler, error) {
	renderer, err := chat.NewRenderer(config.Format, config.RoomLinkBase)
	if err != nil {
		return nil, fmt.Errorf("chat renderer: %w", err)
	}

	l := log.WithFields(map[string]interface{}{"endpoint": Endpoint})
	return &Handler{
		config:   config,
		engine:   engine,
		renderer: renderer,
		errors:   apperrors.NewErrorHandler(l),
		logger:   l,
	}, nil
}

// Handle serves POST /chat with a JSON or form encoded message.
func (h *Handler) Handle(c echo.Context) error {
	// A body in an unsupported media type carries no readable message and is
	// answered like an empty one.
	var input models.ChatMessage
	if err := c.Bind(&input); err != nil && !errors.Is(err, echo.ErrUnsupportedMediaType) {
		return h.errors.Respond(c, apperrors.NewInvalidInputError("invalid chat message", err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		return h.errors.Respond(c, err)
	}

	if output.Intent == chat.IntentEmpty {
		return c.JSON(http.StatusOK, greetingBody{Error: output.Message})
	}
	return c.JSON(http.StatusOK, models.ChatResponse{Message: output.Message})
}

func (h *Handler) execute(ctx context.Context, input *models.ChatMessage) (*Output, error) {
	reply, err := h.engine.Respond(ctx, input.Message)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("Database error.", err)
	}

	h.logger.Debug("chat message classified", map[string]interface{}{
		"intent": string(reply.Intent),
	})
	return &Output{Intent: reply.Intent, Message: h.renderer.Render(reply)}, nil
}

func (h *Handler) Execute(ctx context.Context, input *models.ChatMessage) (*Output, error) {
	return h.execute(ctx, input)
}

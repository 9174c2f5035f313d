package guestdetails

import (
	"context"
	"net/http"

	apperrors "hotel-concierge/internal/common/errors"
	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/models"

	"github.com/labstack/echo/v4"
)

const Endpoint = "guest-details"

type Finder interface {
	FindByEmail(ctx context.Context, email string) ([]models.GuestProfile, error)
}

type Handler struct {
	config *Config
	guests Finder
	errors *apperrors.ErrorHandler
	logger logger.Logger
}

func NewHandler(config *Config, guests Finder, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"endpoint": Endpoint})
	return &Handler{
		config: config,
		guests: guests,
		errors: apperrors.NewErrorHandler(l),
		logger: l,
	}
}

// Handle serves GET /user/details?Email=.
func (h *Handler) Handle(c echo.Context) error {
	var input Input
	if err := c.Bind(&input); err != nil {
		return h.errors.Respond(c, apperrors.NewInvalidInputError("invalid query", err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Email == "" {
		return nil, apperrors.NewInvalidInputError("Email is required", "")
	}

	profiles, err := h.guests.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("Error fetching user data", err)
	}
	if len(profiles) == 0 {
		return nil, apperrors.NewGuestNotFoundError("User data not found for the provided email.", "")
	}

	return &Output{Data: profiles, Message: "User data retrieved successfully."}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

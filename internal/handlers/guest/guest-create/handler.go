package guestcreate

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "hotel-concierge/internal/common/errors"
	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/common/validation"
	"hotel-concierge/internal/models"

	"github.com/labstack/echo/v4"
)

const Endpoint = "guest-create"

var schema = validation.MustCompile(profileSchema)

type Inserter interface {
	Insert(ctx context.Context, p *models.GuestProfile) (int64, error)
}

type Handler struct {
	config *Config
	guests Inserter
	errors *apperrors.ErrorHandler
	logger logger.Logger
}

func NewHandler(config *Config, guests Inserter, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"endpoint": Endpoint})
	return &Handler{
		config: config,
		guests: guests,
		errors: apperrors.NewErrorHandler(l),
		logger: l,
	}
}

// Handle serves POST /user/info with a JSON or form encoded profile.
func (h *Handler) Handle(c echo.Context) error {
	var profile models.GuestProfile
	if err := c.Bind(&profile); err != nil {
		return h.errors.Respond(c, apperrors.NewInvalidInputError("invalid guest profile", err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &profile)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *Handler) execute(ctx context.Context, profile *models.GuestProfile) (*Output, error) {
	doc, err := filledFields(profile)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	result, err := schema.Validate(doc)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if !result.Valid {
		return nil, apperrors.NewInvalidInputError("invalid guest profile", result.Summary())
	}

	id, err := h.guests.Insert(ctx, profile)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("Error inserting user data", err)
	}

	h.logger.Info("guest profile stored", map[string]interface{}{"guestId": id})
	return &Output{Message: "User data inserted successfully."}, nil
}

func (h *Handler) Execute(ctx context.Context, profile *models.GuestProfile) (*Output, error) {
	return h.execute(ctx, profile)
}

// filledFields returns the non-empty profile fields keyed by their JSON names.
func filledFields(profile *models.GuestProfile) (map[string]interface{}, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}
	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	delete(all, "id")
	for k, v := range all {
		if s, ok := v.(string); ok && s == "" {
			delete(all, k)
		}
	}
	return all, nil
}

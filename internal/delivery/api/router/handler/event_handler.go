package handler

import (
	"log/slog"

	"marketbot/internal/delivery/api/response"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/errors"
	"marketbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandler accepts marketplace events from the backend.
type EventHandler struct {
	events usecase.EventUsecase
	logger *slog.Logger
}

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	Events usecase.EventUsecase
	Logger *slog.Logger
}

// EventAcceptedResponse is returned once an event is queued.
type EventAcceptedResponse struct {
	EventID string `json:"event_id"`
	Kind    string `json:"kind"`
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		events: params.Events,
		logger: params.Logger,
	}
}

// PublishEvent handles POST /api/v1/events.
func (h *EventHandler) PublishEvent(c echo.Context) error {
	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed event body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.events.Publish(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Accepted(c, EventAcceptedResponse{
		EventID: event.ID,
		Kind:    string(event.Kind),
	})
}

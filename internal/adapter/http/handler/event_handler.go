package handler

import (
	"io"
	"net/http"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/http/middleware"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type EventHandler struct {
	eventSvc ports.EventService
	log      zerolog.Logger
}

func NewEventHandler(eventSvc ports.EventService, log zerolog.Logger) *EventHandler {
	return &EventHandler{eventSvc: eventSvc, log: log}
}

// Receive handles POST /api/v1/events. Responses are plain text; any valid
// delivery is acknowledged with 200 so the provider stops redelivering.
func (h *EventHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.TextError(c, apperror.ErrInvalidPayload(err))
		return
	}

	outcome, err := h.eventSvc.Receive(c.Request.Context(), body, c.Request.Header)
	if err != nil {
		if appErr := apperror.As(err); appErr == nil || appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("event receipt failed")
		}
		response.TextError(c, err)
		return
	}

	if outcome != nil && outcome.EventID != "" {
		c.Set(middleware.CtxResourceID, outcome.EventID)
	}
	response.Text(c, http.StatusOK, "OK")
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/http/dto"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/http/middleware"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type GatewayHandler struct {
	provisioner ports.GatewayProvisioner
	log         zerolog.Logger
}

func NewGatewayHandler(provisioner ports.GatewayProvisioner, log zerolog.Logger) *GatewayHandler {
	return &GatewayHandler{provisioner: provisioner, log: log}
}

// Provision handles POST /api/v1/gateways. This is an operator boundary:
// provider failures keep their status and body.
func (h *GatewayHandler) Provision(c *gin.Context) {
	var req dto.GatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}
	if req.Merchant == nil {
		response.Error(c, apperror.Validation("Missing merchant data"))
		return
	}

	gateway, err := h.provisioner.Provision(c.Request.Context(), req.Merchant)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeGatewayProvisioning) {
			response.ErrorWithDetails(c, err)
			return
		}
		h.log.Error().
			Err(err).
			Str("request_id", response.RequestID(c)).
			Msg("gateway provisioning failed")
		response.Error(c, err)
		return
	}

	if id := gatewayID(gateway); id != "" {
		c.Set(middleware.CtxResourceID, id)
	}
	c.JSON(http.StatusOK, dto.GatewayResponse{Success: true, Gateway: gateway})
}

func gatewayID(raw json.RawMessage) string {
	var v struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch id := v.ID.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return ""
}

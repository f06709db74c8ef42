package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/http/dto"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/adapter/http/middleware"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
)

// submissionFailedMessage is all an applicant ever sees of a failed
// submission; the cause is logged.
const submissionFailedMessage = "Application submission failed. Please contact support."

type ApplicationHandler struct {
	onboardingSvc ports.OnboardingService
	log           zerolog.Logger
}

func NewApplicationHandler(onboardingSvc ports.OnboardingService, log zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{onboardingSvc: onboardingSvc, log: log}
}

// Submit handles POST /api/v1/applications.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.ApplicationRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}
	dto.SanitizeStruct(&req)
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		response.Error(c, apperror.Validation(dto.BindingMessage(err)))
		return
	}

	result, err := h.onboardingSvc.Submit(c.Request.Context(), req.ToRecord())
	if err != nil {
		if appErr := apperror.As(err); appErr != nil && appErr.HTTPStatus == http.StatusBadRequest {
			response.Error(c, appErr)
			return
		}
		h.log.Error().
			Err(err).
			Str("request_id", response.RequestID(c)).
			Msg("application submission failed")
		response.ErrorStatus(c, http.StatusInternalServerError,
			apperror.New(errorCode(err), submissionFailedMessage, http.StatusInternalServerError))
		return
	}

	if result.ApplicationID != nil {
		c.Set(middleware.CtxResourceID, *result.ApplicationID)
	}
	response.OK(c, dto.ApplicationResponse{
		Success:       true,
		ApplicationID: result.ApplicationID,
	})
}

func errorCode(err error) string {
	if appErr := apperror.As(err); appErr != nil {
		return appErr.Code
	}
	return apperror.CodeInternal
}

package http

import (
	"errors"
	"net/http"

	"github.com/pulsefit/fitgate/internal/onboarding/service"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
	"github.com/pulsefit/fitgate/pkg/httpx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

type CurrentQuestionHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP godoc
//
//	@Summary		Current Question Endpoint
//	@Description	Returns the question the onboarding session is waiting on
//	@Tags			Onboarding
//	@Produce		json
//	@Param			token	path		string					true	"Onboarding session token"
//	@Success		200		{object}	fitsdk.QuestionPayload	"id, key, prompt, type, options, step, total"
//	@Failure		404		{object}	fitsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	fitsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/onboarding/sessions/{token}/question [get].
func (h *CurrentQuestionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	step, err := h.OnboardingService.CurrentQuestion(ctx, r.PathValue("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeSessionNotFound,
				ErrorDescription: "Unknown or expired onboarding session",
			})
		case errors.Is(err, service.ErrOutOfRange):
			httpx.WriteJSON(w, http.StatusConflict, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeFlowConflict,
				ErrorDescription: "Onboarding flow is already complete",
			})
		default:
			log.Error("failed to fetch current question", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to fetch current question",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, questionPayload(step))
}

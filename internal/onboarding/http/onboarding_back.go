package http

import (
	"errors"
	"net/http"

	"github.com/pulsefit/fitgate/internal/onboarding/service"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
	"github.com/pulsefit/fitgate/pkg/httpx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

type BackHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP godoc
//
//	@Summary		Step Back Endpoint
//	@Description	Rewinds the onboarding session one step, discarding the answer of
//	@Description	the re-opened question so it can be answered again
//	@Tags			Onboarding
//	@Produce		json
//	@Param			token	path		string					true	"Onboarding session token"
//	@Success		200		{object}	fitsdk.BackResponse		"question"
//	@Failure		404		{object}	fitsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	fitsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/onboarding/sessions/{token}/back [post].
func (h *BackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	step, err := h.OnboardingService.Back(ctx, r.PathValue("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeSessionNotFound,
				ErrorDescription: "Unknown or expired onboarding session",
			})
		case errors.Is(err, service.ErrNoPriorStep):
			httpx.WriteJSON(w, http.StatusConflict, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeFlowConflict,
				ErrorDescription: "Already at the first question",
			})
		default:
			log.Error("failed to step back", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to step back",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fitsdk.BackResponse{
		Question: questionPayload(step),
	})
}

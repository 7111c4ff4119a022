package http

import (
	"net/http"

	"github.com/pulsefit/fitgate/internal/onboarding/service"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
	"github.com/pulsefit/fitgate/pkg/httpx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

type SessionStartHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP godoc
//
//	@Summary		Start Onboarding Session
//	@Description	Opens a new onboarding flow and returns an opaque session token
//	@Description	plus the first intake question
//	@Tags			Onboarding
//	@Produce		json
//	@Success		200	{object}	fitsdk.StartSessionResponse	"session_token, question"
//	@Failure		500	{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/onboarding/sessions [post].
func (h *SessionStartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token, step, err := h.OnboardingService.Start(ctx)
	if err != nil {
		log.Error("failed to start onboarding session", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to start onboarding session",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fitsdk.StartSessionResponse{
		SessionToken: token,
		Question:     questionPayload(step),
	})
}

// questionPayload converts a service question step into its wire shape.
func questionPayload(step service.QuestionStep) fitsdk.QuestionPayload {
	var options []fitsdk.OptionPayload
	for _, o := range step.Question.Options {
		options = append(options, fitsdk.OptionPayload{Value: o.Value, Label: o.Label})
	}

	return fitsdk.QuestionPayload{
		ID:      step.Question.ID,
		Key:     step.Question.Key,
		Prompt:  step.Question.Prompt,
		Type:    string(step.Question.Type),
		Options: options,
		Step:    step.Step,
		Total:   step.Total,
	}
}

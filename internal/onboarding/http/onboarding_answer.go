package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pulsefit/fitgate/internal/onboarding/service"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
	"github.com/pulsefit/fitgate/pkg/httpx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

type SubmitAnswerHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP godoc
//
//	@Summary		Submit Answer Endpoint
//	@Description	Validates and records the answer for the current question. While
//	@Description	questions remain the next one is returned; the final answer completes
//	@Description	the flow, mints the access code and returns the full completion payload
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string						true	"Onboarding session token"
//	@Param			body	body		fitsdk.SubmitAnswerRequest	true	"value for text/email/single-select, values for multi-select"
//	@Success		200		{object}	fitsdk.SubmitAnswerResponse	"question or completion"
//	@Failure		400		{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/onboarding/sessions/{token}/answers [post].
func (h *SubmitAnswerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req fitsdk.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	result, err := h.OnboardingService.Submit(ctx, r.PathValue("token"), service.AnswerInput{
		Value:  req.Value,
		Values: req.Values,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			httpx.WriteJSON(w, http.StatusBadRequest, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeInvalidAnswer,
				ErrorDescription: vErr.Reason,
			})
		case errors.Is(err, service.ErrSessionNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeSessionNotFound,
				ErrorDescription: "Unknown or expired onboarding session",
			})
		case errors.Is(err, service.ErrAlreadyComplete):
			httpx.WriteJSON(w, http.StatusConflict, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeFlowConflict,
				ErrorDescription: "Onboarding flow is already complete",
			})
		default:
			// Store failure: the session keeps the answer, the client can
			// resubmit the same step.
			log.Error("failed to submit answer", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to record answer, please retry",
			})
		}
		return
	}

	resp := fitsdk.SubmitAnswerResponse{}
	switch {
	case result.Next != nil:
		q := questionPayload(*result.Next)
		resp.Question = &q
	case result.Completion != nil:
		resp.Completion = completionPayload(*result.Completion)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func completionPayload(c service.CompletionResult) *fitsdk.CompletionPayload {
	return &fitsdk.CompletionPayload{
		Tier:             string(c.Profile.Tier),
		TierLabel:        c.Profile.Tier.Label(),
		AccessCode:       c.Profile.AccessCode,
		Name:             c.Profile.Name,
		Email:            c.Profile.Email,
		UnlockedFeatures: c.Unlocked,
		LockedFeatures:   c.Locked,
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

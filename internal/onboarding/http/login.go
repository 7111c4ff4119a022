package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pulsefit/fitgate/internal/onboarding/service"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
	"github.com/pulsefit/fitgate/pkg/httpx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

type LoginHandler struct {
	LoginService *service.LoginService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Validates an access code and opens a short-lived dashboard session.
//	@Description	A code is live only while a persisted lead carries it and its profile
//	@Description	has not been superseded by a later onboarding
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		fitsdk.LoginRequest		true	"access_code"
//	@Success		200		{object}	fitsdk.LoginResponse	"session_token, token_type, expires_in, tier"
//	@Failure		400		{object}	fitsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	fitsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req fitsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if req.AccessCode == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "access_code is required",
		})
		return
	}

	result, err := h.LoginService.Login(ctx, req.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMalformedCode):
			httpx.WriteJSON(w, http.StatusBadRequest, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeInvalidCode,
				ErrorDescription: "Invalid access code, please check and retry",
			})
		case errors.Is(err, service.ErrUnknownCode):
			httpx.WriteJSON(w, http.StatusBadRequest, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeUnknownCode,
				ErrorDescription: "Access code is not recognised",
			})
		default:
			log.Error("failed to log in", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to log in",
			})
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fitsdk.LoginResponse{
		SessionToken: result.Token,
		TokenType:    "Bearer",
		ExpiresIn:    int(result.ExpiresIn.Seconds()),
		Tier:         string(result.Profile.Tier),
		TierLabel:    result.Profile.Tier.Label(),
		Name:         result.Profile.Name,
	})
}

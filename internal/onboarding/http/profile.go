package http

import (
	"errors"
	"net/http"

	"github.com/pulsefit/fitgate/internal/onboarding/store"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
	"github.com/pulsefit/fitgate/pkg/httpx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

type ProfileHandler struct {
	Store store.Store
}

// ServeHTTP godoc
//
//	@Summary		Profile Endpoint
//	@Description	Returns the durable member profile for the authenticated session
//	@Tags			Profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	fitsdk.ProfileResponse	"name, email, tier, access_code, goals, activities"
//	@Failure		401	{object}	fitsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	fitsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email, ok := httpx.EmailFromContext(ctx)
	if !ok || email == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Session token carries no subject",
		})
		return
	}

	profile, err := h.Store.Profiles().GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, fitsdk.ErrorResponse{
				Error:            fitsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "No profile for this session",
			})
			return
		}
		log.Error("failed to load profile", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to load profile",
		})
		return
	}

	resp := fitsdk.ProfileResponse{
		Name:       profile.Name,
		Email:      profile.Email,
		Tier:       string(profile.Tier),
		TierLabel:  profile.Tier.Label(),
		AccessCode: profile.AccessCode,
		Goals:      profile.Goals,
		Activities: profile.Activities,
		CreatedAt:  formatTimestamp(profile.CreatedAt),
	}
	if profile.LastLoginAt != nil {
		resp.LastLoginAt = formatTimestamp(*profile.LastLoginAt)
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

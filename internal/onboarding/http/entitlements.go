package http

import (
	"net/http"

	"github.com/pulsefit/fitgate/internal/onboarding/domain"
	"github.com/pulsefit/fitgate/internal/onboarding/service"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
	"github.com/pulsefit/fitgate/pkg/httpx"
)

type EntitlementsHandler struct {
	EntitlementService *service.EntitlementService
}

// HandleList godoc
//
//	@Summary		List Entitlements Endpoint
//	@Description	Returns the unlocked and locked feature lists for the session's tier
//	@Tags			Entitlements
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	fitsdk.EntitlementsResponse	"tier, rank, unlocked_features, locked_features"
//	@Failure		401	{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/entitlements [get].
func (h *EntitlementsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tier, ok := h.sessionTier(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, fitsdk.EntitlementsResponse{
		Tier:             string(tier),
		Rank:             h.EntitlementService.Rank(tier),
		UnlockedFeatures: h.EntitlementService.Unlocked(tier),
		LockedFeatures:   h.EntitlementService.Locked(tier),
	})
}

// HandleCheck godoc
//
//	@Summary		Feature Check Endpoint
//	@Description	Tests a single feature against the session's tier. Unknown features
//	@Description	report locked rather than erroring
//	@Tags			Entitlements
//	@Produce		json
//	@Security		BearerAuth
//	@Param			feature	path		string						true	"Feature id, e.g. ai-form-analysis"
//	@Success		200		{object}	fitsdk.FeatureCheckResponse	"feature, tier, unlocked"
//	@Failure		401		{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/entitlements/{feature} [get].
func (h *EntitlementsHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	tier, ok := h.sessionTier(w, r)
	if !ok {
		return
	}

	feature := r.PathValue("feature")
	httpx.WriteJSON(w, http.StatusOK, fitsdk.FeatureCheckResponse{
		Feature:  feature,
		Tier:     string(tier),
		Unlocked: h.EntitlementService.IsUnlocked(tier, feature),
	})
}

// sessionTier pulls a valid tier out of the authenticated request, writing
// the error response itself when the token carries none.
func (h *EntitlementsHandler) sessionTier(w http.ResponseWriter, r *http.Request) (domain.Tier, bool) {
	raw, ok := httpx.TierFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Session token carries no tier",
		})
		return "", false
	}

	tier, valid := domain.ParseTier(raw)
	if !valid {
		httpx.WriteJSON(w, http.StatusUnauthorized, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Session token carries an unknown tier",
		})
		return "", false
	}
	return tier, true
}

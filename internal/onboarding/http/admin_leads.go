package http

import (
	"net/http"

	"github.com/pulsefit/fitgate/internal/onboarding/store"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
	"github.com/pulsefit/fitgate/pkg/httpx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

type LeadsHandler struct {
	Store store.Store
}

// ServeHTTP godoc
//
//	@Summary		List Leads Endpoint
//	@Description	Returns the marketing lead ledger, newest first. Guarded by the
//	@Description	X-Admin-Key header
//	@Tags			Admin
//	@Produce		json
//	@Param			X-Admin-Key	header		string					true	"Admin key"
//	@Success		200			{object}	fitsdk.ListLeadsResponse	"leads"
//	@Failure		401			{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Failure		500			{object}	fitsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/admin/leads [get].
func (h *LeadsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	leads, err := h.Store.Leads().ListLeads(ctx)
	if err != nil {
		log.Error("failed to list leads", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, fitsdk.ErrorResponse{
			Error:            fitsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list leads",
		})
		return
	}

	records := make([]fitsdk.LeadRecord, 0, len(leads))
	for _, l := range leads {
		records = append(records, fitsdk.LeadRecord{
			ID:             l.ID,
			Name:           l.Name,
			Email:          l.Email,
			Tier:           string(l.Tier),
			AccessCode:     l.AccessCode,
			Source:         l.Source,
			RawPreferences: l.RawPreferences,
			CreatedAt:      formatTimestamp(l.CreatedAt),
		})
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fitsdk.ListLeadsResponse{Leads: records})
}

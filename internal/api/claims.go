package api

import (
	"net/http"

	"github.com/erazemk/najdeno/internal/catalog"
	"github.com/erazemk/najdeno/internal/store"
	"github.com/erazemk/najdeno/internal/text"
)

// ClaimsHandler handles claim submission and moderation endpoints.
type ClaimsHandler struct {
	Store  *store.Store
	Engine *catalog.Engine
}

type submitClaimRequest struct {
	ItemID  string `json:"item_id"`
	Claimer string `json:"claimer"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Proof   string `json:"proof"`
}

// Submit handles POST /api/claims: a visitor asserting ownership of an item.
func (h *ClaimsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claim, err := h.Engine.SubmitClaim(r.Context(), catalog.SubmitClaimInput{
		ItemID:  req.ItemID,
		Claimer: text.NormalizeWhitespace(req.Claimer),
		Email:   text.NormalizeWhitespace(req.Email),
		Phone:   text.NormalizeWhitespace(req.Phone),
		Proof:   text.NormalizeWhitespace(req.Proof),
	})
	if err != nil {
		catalogError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, claim)
}

// AdminList handles GET /api/admin/claims?mode=pending|history.
func (h *ClaimsHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	mode := catalog.ClaimMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = catalog.ClaimModePending
	}
	if !catalog.ValidClaimMode(mode) {
		jsonError(w, http.StatusBadRequest, "mode must be 'pending' or 'history'")
		return
	}

	snap, err := catalog.LoadSnapshot(r.Context(), h.Store)
	if err != nil {
		catalogError(w, err)
		return
	}

	claims := catalog.ClaimListing(snap.Claims, mode)
	jsonResponse(w, http.StatusOK, map[string]any{
		"claims": claims,
		"count":  len(claims),
	})
}

// Approve handles POST /api/admin/claims/{id}/approve: the winning claim
// is approved, the item leaves circulation, and rival claims are rejected.
func (h *ClaimsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.ApproveClaim(r.Context(), r.PathValue("id")); err != nil {
		catalogError(w, err)
		return
	}
	claimDecisions.WithLabelValues("approved").Inc()
	jsonResponse(w, http.StatusOK, map[string]string{"message": "claim approved"})
}

// Reject handles POST /api/admin/claims/{id}/reject.
func (h *ClaimsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.RejectClaim(r.Context(), r.PathValue("id")); err != nil {
		catalogError(w, err)
		return
	}
	claimDecisions.WithLabelValues("rejected").Inc()
	jsonResponse(w, http.StatusOK, map[string]string{"message": "claim rejected"})
}

// Delete handles DELETE /api/admin/claims/{id}.
func (h *ClaimsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.DeleteClaim(r.Context(), r.PathValue("id")); err != nil {
		catalogError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "claim deleted"})
}

package api

import (
	"net/http"
	"strings"

	"github.com/erazemk/najdeno/internal/catalog"
	"github.com/erazemk/najdeno/internal/model"
	"github.com/erazemk/najdeno/internal/store"
	"github.com/erazemk/najdeno/internal/text"
)

// placeholderImage is shown when an item has no image of its own.
const placeholderImage = "/assets/image-unavailable.png"

// visitorTagline is appended to the public result counter.
const visitorTagline = "Help reunite lost belongings with their owners!"

// ItemsHandler handles item browsing, reporting, and moderation endpoints.
type ItemsHandler struct {
	Store  *store.Store
	Engine *catalog.Engine
}

type reportItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
}

type setItemStatusRequest struct {
	Status string `json:"status"`
}

// displayItem fills in presentation-only fields on a copy of the item.
func displayItem(item model.Item) model.Item {
	item.Name = text.FormatForDisplay(item.Name)
	if item.ImageURL == "" {
		item.ImageURL = placeholderImage
	}
	return item
}

func displayItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	for i, item := range items {
		out[i] = displayItem(item)
	}
	return out
}

// List handles GET /api/items: the public listing, with optional free-text
// query (?q=) and category filter (?categories=a,b or "all").
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, err := catalog.LoadSnapshot(r.Context(), h.Store)
	if err != nil {
		catalogError(w, err)
		return
	}

	filter := catalog.AllCategories()
	if raw := r.URL.Query()["categories"]; len(raw) > 0 {
		var labels []string
		for _, v := range raw {
			for _, label := range splitCSV(v) {
				labels = append(labels, label)
			}
		}
		filter = catalog.Categories(labels...)
	}

	items := catalog.Search(snap.Items, r.URL.Query().Get("q"), filter)

	jsonResponse(w, http.StatusOK, map[string]any{
		"items": displayItems(items),
		"count": catalog.CountString(len(items)) + " • " + visitorTagline,
	})
}

// Get handles GET /api/items/{id}. Only listed items are publicly visible.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Store.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		catalogError(w, err)
		return
	}
	if item == nil || item.Status != model.ItemStatusListed {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, displayItem(*item))
}

// Create handles POST /api/items: a visitor reporting a found item.
// New items start pending and stay off the public listing until a
// moderator approves them.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reportItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := text.NormalizeWhitespace(req.Name)
	if name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	item, err := h.Store.CreateItem(r.Context(), name,
		text.NormalizeWhitespace(req.Description),
		text.NormalizeWhitespace(req.Location),
		req.Tags, req.ImageURL,
	)
	if err != nil {
		catalogError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// AdminList handles GET /api/admin/items: all items with pending ones
// first, plus per-status counts.
func (h *ItemsHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	snap, err := catalog.LoadSnapshot(r.Context(), h.Store)
	if err != nil {
		catalogError(w, err)
		return
	}

	view := catalog.AdminListing(snap.Items)
	jsonResponse(w, http.StatusOK, map[string]any{
		"items": view.Items,
		"counts": map[string]int{
			"total":   view.Total,
			"pending": view.Pending,
			"listed":  view.Listed,
		},
	})
}

// SetStatus handles PUT /api/admin/items/{id}/status. Covers the
// pending/listed toggle and the claimed-to-listed restore.
func (h *ItemsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setItemStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Engine.SetItemStatus(r.Context(), r.PathValue("id"), req.Status); err != nil {
		catalogError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item status updated"})
}

// Delete handles DELETE /api/admin/items/{id}. Claims on the item are
// kept; they render through their denormalized fields.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		catalogError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// splitCSV splits a comma-separated query value, dropping empty parts.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package handlers

import (
	"net/http"

	"showdb/internal/catalog"
	"showdb/internal/types"
	"showdb/internal/utils"
)

type CatalogHandler struct {
	gateway *catalog.Gateway
}

func NewCatalogHandler(gateway *catalog.Gateway) *CatalogHandler {
	return &CatalogHandler{gateway: gateway}
}

// kindFromPath validates the {kind} path segment. A bad kind writes a 400 and
// reports false.
func kindFromPath(w http.ResponseWriter, r *http.Request) (types.MediaType, bool) {
	kind, ok := types.ParseMediaType(utils.GetPathParam(r, "kind"))
	if !ok {
		utils.RespondMessage(w, "Kind must be 'movie' or 'tv'", http.StatusBadRequest)
		return "", false
	}
	return kind, true
}

func (h *CatalogHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}

	utils.RespondJSON(w, map[string]interface{}{
		"results": h.gateway.Trending(kind),
	}, http.StatusOK)
}

func (h *CatalogHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}
	page := utils.GetQueryParamInt(r, "page", 1)

	utils.RespondJSON(w, map[string]interface{}{
		"results": h.gateway.Popular(kind, page),
		"page":    page,
	}, http.StatusOK)
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := utils.GetQueryParam(r, "query", "")
	if query == "" {
		utils.RespondMessage(w, "Search query is required", http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, map[string]interface{}{
		"results": h.gateway.Search(query),
	}, http.StatusOK)
}

func (h *CatalogHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}
	id, err := utils.GetPathParamInt(r, "id")
	if err != nil {
		utils.RespondMessage(w, "Invalid title ID", http.StatusBadRequest)
		return
	}

	details := h.gateway.Details(kind, id)
	if details == nil {
		utils.RespondMessage(w, "Title not found", http.StatusNotFound)
		return
	}

	// Flatten the union so clients get one object per kind.
	if details.Movie != nil {
		utils.RespondJSON(w, details.Movie, http.StatusOK)
		return
	}
	utils.RespondJSON(w, details.Series, http.StatusOK)
}

func (h *CatalogHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}
	id, err := utils.GetPathParamInt(r, "id")
	if err != nil {
		utils.RespondMessage(w, "Invalid title ID", http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, map[string]interface{}{
		"results": h.gateway.Similar(kind, id),
	}, http.StatusOK)
}

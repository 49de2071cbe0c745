package handlers

import (
	"encoding/json"
	"net/http"

	"showdb/internal/bookmarks"
	"showdb/internal/types"
	"showdb/internal/utils"
)

type BookmarkHandler struct {
	store *bookmarks.Store
}

func NewBookmarkHandler(store *bookmarks.Store) *BookmarkHandler {
	return &BookmarkHandler{store: store}
}

func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, map[string]interface{}{
		"bookmarks": h.store.List(),
	}, http.StatusOK)
}

func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	var bookmark types.Bookmark
	if err := json.NewDecoder(r.Body).Decode(&bookmark); err != nil {
		utils.RespondMessage(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, ok := types.ParseMediaType(string(bookmark.MediaType)); !ok {
		utils.RespondMessage(w, "Kind must be 'movie' or 'tv'", http.StatusBadRequest)
		return
	}
	if bookmark.ID == 0 || bookmark.Name == "" {
		utils.RespondMessage(w, "Bookmark id and title are required", http.StatusBadRequest)
		return
	}

	h.store.Add(bookmark)
	utils.RespondJSON(w, bookmark, http.StatusCreated)
}

func (h *BookmarkHandler) Contains(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}
	id, err := utils.GetPathParamInt(r, "id")
	if err != nil {
		utils.RespondMessage(w, "Invalid title ID", http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, map[string]bool{
		"bookmarked": h.store.Contains(id, kind),
	}, http.StatusOK)
}

func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}
	id, err := utils.GetPathParamInt(r, "id")
	if err != nil {
		utils.RespondMessage(w, "Invalid title ID", http.StatusBadRequest)
		return
	}

	h.store.Remove(id, kind)
	utils.RespondMessage(w, "Bookmark removed", http.StatusOK)
}

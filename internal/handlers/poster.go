package handlers

import (
	"net/http"

	"showdb/internal/placeholder"
	"showdb/internal/utils"
)

// PosterHandler serves generated placeholder posters so clients can point an
// image tag straight at the API when a title has no real artwork.
type PosterHandler struct{}

func NewPosterHandler() *PosterHandler {
	return &PosterHandler{}
}

func (h *PosterHandler) GetPoster(w http.ResponseWriter, r *http.Request) {
	title := utils.GetQueryParam(r, "title", "")
	if title == "" {
		utils.RespondMessage(w, "Title is required", http.StatusBadRequest)
		return
	}
	year := utils.GetQueryParam(r, "year", "")

	svg, ok := placeholder.DecodeSVG(placeholder.Render(title, year))
	if !ok {
		utils.RespondMessage(w, "Failed to render poster", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=31536000") // output is deterministic
	w.Write(svg)
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"songsearch/core/catalog"
	"songsearch/logger"
	"songsearch/model"
)

const (
	// searchLimit is the fixed number of results requested per search; the
	// gateway exposes no pagination beyond the first page.
	searchLimit = 10

	// upstreamTimeout bounds the catalog call so a stalled upstream cannot
	// hold the request open indefinitely.
	upstreamTimeout = 10 * time.Second
)

// Searcher is the catalog capability the handlers need.
type Searcher interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]model.Track, error)
}

var _ Searcher = (*catalog.Client)(nil)

// APIHandler serves the gateway routes. The searcher is constructed once at
// startup and shared read-only by all requests; it is nil when catalog
// initialization failed, with initErr carrying the cause.
type APIHandler struct {
	searcher Searcher
	initErr  error
}

// NewAPIHandler creates the handler set. Pass a nil searcher together with
// the initialization error to run in the permanently-degraded mode where
// search reports the catalog as unavailable.
func NewAPIHandler(searcher Searcher, initErr error) *APIHandler {
	return &APIHandler{
		searcher: searcher,
		initErr:  initErr,
	}
}

// HomeHandler reports process liveness. Always 200; the body additionally
// says whether the catalog client came up.
func (h *APIHandler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if h.searcher != nil {
		fmt.Fprint(w, "Spotify search backend is running!")
		return
	}
	fmt.Fprint(w, "Spotify search backend is running! Catalog client is not initialized.")
}

// SearchHandler proxies a song-name query to the catalog and reshapes the
// first page of results.
func (h *APIHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if h.searcher == nil {
		logger.Warn("search rejected, catalog client unavailable", logger.ErrorField(h.initErr))
		respondError(w, http.StatusInternalServerError, "Spotify client not initialized. Check credentials.")
		return
	}

	songName := r.URL.Query().Get("song_name")
	if songName == "" {
		respondError(w, http.StatusBadRequest, "Missing 'song_name' query parameter")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), upstreamTimeout)
	defer cancel()

	tracks, err := h.searcher.SearchTracks(ctx, songName, searchLimit)
	if err != nil {
		var upErr *catalog.UpstreamError
		if errors.As(err, &upErr) {
			respondError(w, http.StatusInternalServerError, "Spotify API error: "+upErr.Message)
			return
		}
		logger.Error("unexpected error handling search",
			logger.String("song_name", songName),
			logger.String("request_id", requestIDFrom(r)),
			logger.ErrorField(err),
		)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred: "+err.Error())
		return
	}

	if len(tracks) == 0 {
		respondJSON(w, http.StatusOK, model.MessageResponse{
			Message: fmt.Sprintf("No tracks found matching '%s'.", songName),
		})
		return
	}

	respondJSON(w, http.StatusOK, model.SearchResponse{Tracks: tracks})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", logger.ErrorField(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, model.ErrorResponse{Error: message})
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"heavylingam-backend/internal/cache"
)

// StreamHandler re-exposes hub pushes as server-sent events so browser
// views see collection changes without polling. The catalog and admin
// streams are separate subscribers of the same shared hub.
type StreamHandler struct {
	hub *cache.Hub
}

func NewStreamHandler(hub *cache.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

func (h *StreamHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := h.hub.Listen()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case listings, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(listings)
			if err != nil {
				return
			}
			fmt.Fprintf(w, "event: listings\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

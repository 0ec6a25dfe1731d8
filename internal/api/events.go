package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

const eventsBuffer = 64

// HandleEvents streams store changes as server-sent events. The optional
// ?kind query narrows the stream to one table.
func (handler *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	kind := store.Kind(r.URL.Query().Get("kind"))
	if kind != "" && !slices.Contains(store.Kinds, kind) {
		writeError(w, "events", apperr.Validation("unknown kind %q", kind))
		return
	}

	changes := make(chan store.Change, eventsBuffer)
	unsubscribe := handler.changes.Subscribe(kind, func(c store.Change) {
		select {
		case changes <- c:
		default:
			log.Warnf("events: slow client, dropping %s change of %s", c.Op, c.Kind)
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", pkg.ContentType.EventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ping := time.NewTicker(handler.eventsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debugf("events: client gone: %s", r.Context().Err())
			return
		case c := <-changes:
			data, err := json.Marshal(c)
			if err != nil {
				log.Errorf("events: marshal change: %s", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", c.Op, data); err != nil {
				log.Debugf("events: write: %s", err)
				return
			}
			flusher.Flush()
		case <-ping.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

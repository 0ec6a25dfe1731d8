// Package api exposes the tracker over a loopback HTTP JSON API.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	maxBodyBytes        = 1 << 20
	maxBackupBytes      = 32 << 20
	defaultEventsPingIn = 25 * time.Second
)

type Handler struct {
	tracker   trackerService
	stats     statsService
	reminders remindersService
	backup    backupService
	changes   changeNotifier

	eventsPingInterval time.Duration
}

func NewHandler(
	tr trackerService,
	st statsService,
	rem remindersService,
	bk backupService,
	changes changeNotifier,
) *Handler {
	return &Handler{
		tracker:            tr,
		stats:              st,
		reminders:          rem,
		backup:             bk,
		changes:            changes,
		eventsPingInterval: defaultEventsPingIn,
	}
}

// WithEventsPingInterval sets how often an idle event stream gets a comment
// line to keep proxies from closing it.
func (handler *Handler) WithEventsPingInterval(d time.Duration) *Handler {
	handler.eventsPingInterval = d
	return handler
}

// statusFor maps the error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case apperr.IsValidation(err):
		return http.StatusBadRequest
	case apperr.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
	} else {
		log.Debugf("%s: %s", op, err)
	}
	http.Error(w, apperr.Message(err), status)
}

// decodeJSON reads a JSON request body into v. An empty body leaves v as is.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.Validation("invalid request body: %s", err)
	}
	return nil
}

// queryFromRequest reads the optional from/to date bounds of a listing.
func queryFromRequest(r *http.Request) (store.Query, error) {
	q := store.Query{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	for _, d := range []string{q.From, q.To} {
		if d != "" && !calendar.IsValidISO(d) {
			return store.Query{}, apperr.Validation("invalid date %q, expected YYYY-MM-DD", d)
		}
	}
	return q, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	pkg.WriteJSON(w, v, http.StatusOK)
}

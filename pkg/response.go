package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON        string
	Text        string
	EventStream string
}{
	JSON:        "application/json",
	Text:        "text/plain; charset=utf-8",
	EventStream: "text/event-stream",
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

// WriteResponseBytes sets the content type, if any, and writes message with
// statusCode.
func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response of %d bytes: %s", len(message), err)
	}
}

// WriteJSON marshals v and writes it with the given status code. A value
// that cannot be marshalled becomes a 500.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, data, statusCode)
}

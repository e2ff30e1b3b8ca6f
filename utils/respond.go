package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// RespondData writes the success envelope: {"data": [...], "count": N}.
func RespondData(w http.ResponseWriter, status int, data interface{}, count int) {
	writeJSON(w, status, map[string]interface{}{
		"data":  data,
		"count": count,
	})
}

// RespondError writes the failure envelope: {"data": [], "error": <string-or-list>}.
func RespondError(w http.ResponseWriter, status int, errPayload interface{}) {
	writeJSON(w, status, map[string]interface{}{
		"data":  []interface{}{},
		"error": errPayload,
	})
}

// RespondMessage writes a success message with no data payload.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"data":    []interface{}{},
		"message": message,
	})
}

// RespondInternalError logs the error with full detail and surfaces a generic 500.
// Storage constraint violations land here too; the client gets no detail.
func RespondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logrus.WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"method": r.Method,
	}).WithError(err).Error("unhandled error")
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error": "Internal Server Error",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("failed to write response")
	}
}

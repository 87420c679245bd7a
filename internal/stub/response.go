package stub

import (
	"encoding/json"
	"net/http"
)

// emptyObject is the body the service sends for deletes and misses.
var emptyObject = struct{}{}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, emptyObject)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, emptyObject)
}

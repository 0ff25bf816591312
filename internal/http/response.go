package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FieldErrors maps a field name to its validation messages, the shape a
// 400 response serializes directly.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

func writeFieldErrors(w http.ResponseWriter, errs FieldErrors) {
	writeJSON(w, http.StatusBadRequest, errs)
}

func writeNotFound(w http.ResponseWriter) {
	writeDetail(w, http.StatusNotFound, "Not found.")
}

func writeInvalidPage(w http.ResponseWriter) {
	writeDetail(w, http.StatusNotFound, "Invalid page.")
}

func writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeDetail(w, http.StatusInternalServerError, "Internal server error.")
}

func writeJSONParseError(w http.ResponseWriter) {
	writeDetail(w, http.StatusBadRequest, "JSON parse error.")
}

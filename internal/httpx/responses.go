package httpx

import (
	"encoding/json"
	"net/http"
)

// writeDetail emits the single-field error body the API uses for
// auth, throttling and server faults.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

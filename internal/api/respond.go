package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// writeError maps the shared error taxonomy onto HTTP statuses. Everything
// unrecognized is a 500 with a generic body; the cause is logged, not leaked.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrorNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, shared.ErrorValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, shared.ErrorInsufficientBalance):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, shared.ErrorExternalService):
		log.Printf("external service error: %v", err)
		http.Error(w, "Upstream service failed", http.StatusBadGateway)
	default:
		log.Printf("internal error: %v", err)
		http.Error(w, internalServerError, http.StatusInternalServerError)
	}
}

package handler

import (
	"encoding/json"
	"net/http"
)

// Health responde el estado del gateway. Misma forma de body que el
// /health del servicio de recomendación.
// @Summary Healthcheck
// @Tags health
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
}

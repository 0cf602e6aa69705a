package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/recommender"
)

// EngineHandler expone el motor TF-IDF directamente. Es la cara HTTP
// del servicio de recomendación; el gateway le habla a través del proxy.
type EngineHandler struct {
	engine *recommender.Engine
}

func NewEngineHandler(e *recommender.Engine) *EngineHandler {
	return &EngineHandler{engine: e}
}

func engineStatus(err error) int {
	if errors.Is(err, recommender.ErrNotInitialized) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// @Summary Catálogo completo del corpus
// @Tags engine
// @Produce json
// @Success 200 {array} models.Item
// @Failure 503 {object} map[string]string
// @Router /items [get]
func (h *EngineHandler) Items(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := h.engine.ListAll()
	if err != nil {
		http.Error(w, err.Error(), engineStatus(err))
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

type profileRequest struct {
	Year      string   `json:"year"`
	Classes   []string `json:"classes"`
	Interests string   `json:"interests"`
}

// @Summary Recomendaciones para un perfil
// @Tags engine
// @Accept json
// @Produce json
// @Param body body profileRequest true "perfil del estudiante"
// @Success 200 {array} models.RecItem
// @Failure 503 {object} map[string]string
// @Router /recommend [post]
func (h *EngineHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.engine.Recommend(models.Profile{
		Year:      req.Year,
		Classes:   req.Classes,
		Interests: req.Interests,
	})
	if err != nil {
		http.Error(w, err.Error(), engineStatus(err))
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Recargar el corpus y reentrenar
// @Tags engine
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]string
// @Router /reload [post]
func (h *EngineHandler) Reload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.engine.Build(r.Context()); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"reloaded": true})
}

// @Summary Estado del motor
// @Tags engine
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *EngineHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"ready":  h.engine.Ready(),
	})
}

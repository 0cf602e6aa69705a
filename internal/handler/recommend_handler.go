package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/service"
)

// RecommendHandler reenvía las peticiones al servicio de recomendación.
type RecommendHandler struct {
	svc *service.RecommendProxy
}

func NewRecommendHandler(s *service.RecommendProxy) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

func recStatus(err error) int {
	if errors.Is(err, service.ErrRecServiceDown) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

type recommendRequest struct {
	Year      string   `json:"year"`
	Classes   []string `json:"classes"`
	Interests string   `json:"interests"`
}

// @Summary Recomendaciones de clubs para un perfil
// @Description Reenvía el perfil al servicio de recomendación (cache Redis de 1h)
// @Tags recommend
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body recommendRequest true "perfil del estudiante"
// @Success 200 {array} models.RecItem
// @Failure 503 {object} map[string]string
// @Router /recommend [post]
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.svc.Recommend(r.Context(), r.Header.Get("Authorization"), models.Profile{
		Year:      req.Year,
		Classes:   req.Classes,
		Interests: req.Interests,
	})
	if err != nil {
		http.Error(w, err.Error(), recStatus(err))
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Catálogo de ítems recomendables
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Item
// @Failure 503 {object} map[string]string
// @Router /recommend/items [get]
func (h *RecommendHandler) Items(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := h.svc.Items(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, err.Error(), recStatus(err))
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Reentrenar el modelo (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]string
// @Router /recommend/reload [post]
func (h *RecommendHandler) Reload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.svc.Reload(r.Context(), r.Header.Get("Authorization")); err != nil {
		http.Error(w, err.Error(), recStatus(err))
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"reloaded": true})
}

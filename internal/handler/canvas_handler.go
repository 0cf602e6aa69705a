package handler

import (
	"encoding/json"
	"net/http"

	"github.com/taoTimTim/C2Hakathon2025/internal/service"
)

type CanvasHandler struct {
	svc *service.CanvasService
}

func NewCanvasHandler(s *service.CanvasService) *CanvasHandler {
	return &CanvasHandler{svc: s}
}

type syncRequest struct {
	CanvasToken string `json:"canvas_token"`
}

// @Summary Sincronizar cursos y grupos desde Canvas
// @Description Crea (o reutiliza) una sala por cada curso y grupo del usuario
// @Tags canvas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body syncRequest true "token de Canvas"
// @Success 200 {object} service.SyncResult
// @Failure 401 {object} map[string]string
// @Router /sync [post]
func (h *CanvasHandler) Sync(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.Sync(r.Context(), UserIDFromContext(r.Context()), req.CanvasToken)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

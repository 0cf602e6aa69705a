package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/go-chi/chi/v5"
)

type MessageHandler struct {
	svc *service.MessageService
}

func NewMessageHandler(s *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: s}
}

type sendMessageRequest struct {
	RoomID  int    `json:"room_id"`
	Content string `json:"content"`
}

// @Summary Enviar mensaje (REST)
// @Description Alternativa REST al evento send_message del WebSocket
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body sendMessageRequest true "mensaje"
// @Success 201 {object} models.MessageDoc
// @Failure 403 {object} map[string]string
// @Router /messages [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Send(r.Context(), req.RoomID, UserIDFromContext(r.Context()), req.Content)
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

type editMessageRequest struct {
	Content string `json:"content"`
}

// @Summary Editar mensaje
// @Description Solo el autor puede editar su mensaje
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "messageId"
// @Param body body editMessageRequest true "nuevo contenido"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /messages/{id} [put]
func (h *MessageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req editMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Edit(r.Context(), id, UserIDFromContext(r.Context()), req.Content); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"edited": true})
}

// @Summary Borrar mensaje
// @Description Solo el autor puede borrar su mensaje
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path int true "messageId"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.Delete(r.Context(), id, UserIDFromContext(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"deleted": true})
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/go-chi/chi/v5"
)

type RoomHandler struct {
	svc      *service.RoomService
	messages *service.MessageService
}

func NewRoomHandler(s *service.RoomService, messages *service.MessageService) *RoomHandler {
	return &RoomHandler{svc: s, messages: messages}
}

type createRoomRequest struct {
	Name     string `json:"name"`
	RoomType string `json:"room_type"`
	ScopeID  string `json:"scope_id"`
}

// @Summary Crear sala
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createRoomRequest true "datos de la sala"
// @Success 201 {object} models.RoomDoc
// @Failure 400 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	room, err := h.svc.CreateRoom(r.Context(), UserIDFromContext(r.Context()), service.CreateRoomData{
		Name:     req.Name,
		RoomType: req.RoomType,
		ScopeID:  req.ScopeID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(room)
}

// @Summary Mis salas
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param type query string false "class|club|group|subgroup|school"
// @Success 200 {array} models.RoomDoc
// @Router /rooms [get]
func (h *RoomHandler) Mine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rooms, err := h.svc.MyRooms(r.Context(), UserIDFromContext(r.Context()), r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(rooms)
}

// @Summary Detalle de una sala
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "roomId"
// @Success 200 {object} models.RoomDoc
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	room, err := h.svc.GetRoom(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if room == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(room)
}

// @Summary Unirse a una sala
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "roomId"
// @Success 200 {object} map[string]any
// @Router /rooms/{id}/join [post]
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.JoinRoom(r.Context(), id, UserIDFromContext(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"joined": true})
}

// @Summary Salir de una sala
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "roomId"
// @Success 200 {object} map[string]any
// @Router /rooms/{id}/leave [post]
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.LeaveRoom(r.Context(), id, UserIDFromContext(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"left": true})
}

// @Summary Miembros de una sala
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "roomId"
// @Success 200 {array} models.RoomMember
// @Router /rooms/{id}/members [get]
func (h *RoomHandler) Members(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	members, err := h.svc.Members(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(members)
}

// @Summary Historial de mensajes de una sala
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "roomId"
// @Param limit query int false "límite (default: 50, máx 100)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.MessageDoc
// @Router /rooms/{id}/messages [get]
func (h *RoomHandler) History(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	msgs, err := h.messages.History(r.Context(), id, UserIDFromContext(r.Context()), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	_ = json.NewEncoder(w).Encode(msgs)
}

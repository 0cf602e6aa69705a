package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/go-chi/chi/v5"
)

// GroupHandler expone los grupos de Canvas del usuario. Los grupos se
// materializan como salas de tipo "group" durante el sync, así que por
// debajo todo son salas.
type GroupHandler struct {
	rooms    *service.RoomService
	messages *service.MessageService
	posts    *service.PostService
}

func NewGroupHandler(rooms *service.RoomService, messages *service.MessageService, posts *service.PostService) *GroupHandler {
	return &GroupHandler{rooms: rooms, messages: messages, posts: posts}
}

// @Summary Mis grupos
// @Tags groups
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.RoomDoc
// @Router /groups [get]
func (h *GroupHandler) Mine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	groups, err := h.rooms.MyRooms(r.Context(), UserIDFromContext(r.Context()), models.RoomTypeGroup)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(groups)
}

// @Summary Miembros de un grupo
// @Tags groups
// @Security BearerAuth
// @Produce json
// @Param id path int true "roomId del grupo"
// @Success 200 {array} models.RoomMember
// @Router /groups/{id}/members [get]
func (h *GroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	members, err := h.rooms.Members(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(members)
}

// @Summary Mensajes de un grupo
// @Tags groups
// @Security BearerAuth
// @Produce json
// @Param id path int true "roomId del grupo"
// @Param limit query int false "límite (default: 50, máx 100)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.MessageDoc
// @Router /groups/{id}/messages [get]
func (h *GroupHandler) Messages(w http.ResponseWriter, r *http.Request) {
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

// @Summary Posts del tablón de un grupo
// @Tags groups
// @Security BearerAuth
// @Produce json
// @Param id path int true "roomId del grupo"
// @Success 200 {array} models.PostDoc
// @Router /groups/{id}/posts [get]
func (h *GroupHandler) Posts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	// El tablón del grupo va por el scope_id de Canvas, no por el roomId.
	room, err := h.rooms.GetRoom(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if room == nil {
		http.NotFound(w, r)
		return
	}

	posts, err := h.posts.ListPosts(r.Context(), "group", room.ScopeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(posts)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/go-chi/chi/v5"
)

type ClubHandler struct {
	svc      *service.ClubService
	messages *service.MessageService
	posts    *service.PostService
}

func NewClubHandler(s *service.ClubService, messages *service.MessageService, posts *service.PostService) *ClubHandler {
	return &ClubHandler{svc: s, messages: messages, posts: posts}
}

type createClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Contact     string `json:"contact"`
	ImageURL    string `json:"image_url"`
}

// @Summary Crear club
// @Description Crea el club, su sala de chat y deja al creador como leader
// @Tags clubs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createClubRequest true "datos del club"
// @Success 201 {object} models.ClubDoc
// @Failure 400 {object} map[string]string
// @Router /clubs [post]
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req createClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	club, err := h.svc.CreateClub(r.Context(), UserIDFromContext(r.Context()), service.CreateClubData{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Contact:     req.Contact,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(club)
}

// @Summary Listar clubs
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ClubWithMembers
// @Router /clubs [get]
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	clubs, err := h.svc.ListClubs(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(clubs)
}

// @Summary Mis clubs
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ClubDoc
// @Router /clubs/mine [get]
func (h *ClubHandler) Mine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	clubs, err := h.svc.MyClubs(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(clubs)
}

// @Summary Detalle de un club
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path int true "clubId"
// @Success 200 {object} models.ClubDoc
// @Failure 404 {object} map[string]string
// @Router /clubs/{id} [get]
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	club, err := h.svc.GetClub(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if club == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(club)
}

// @Summary Unirse a un club
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path int true "clubId"
// @Success 200 {object} map[string]any
// @Router /clubs/{id}/join [post]
func (h *ClubHandler) Join(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.JoinClub(r.Context(), id, UserIDFromContext(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"joined": true})
}

// @Summary Salir de un club
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path int true "clubId"
// @Success 200 {object} map[string]any
// @Router /clubs/{id}/leave [post]
func (h *ClubHandler) Leave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.LeaveClub(r.Context(), id, UserIDFromContext(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"left": true})
}

// @Summary Miembros de un club
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path int true "clubId"
// @Success 200 {array} models.ClubMember
// @Router /clubs/{id}/members [get]
func (h *ClubHandler) Members(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	members, err := h.svc.Members(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(members)
}

// @Summary Mensajes de la sala del club
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path int true "clubId"
// @Param limit query int false "límite (default: 50, máx 100)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.MessageDoc
// @Router /clubs/{id}/messages [get]
func (h *ClubHandler) Messages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	room, err := h.svc.Room(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	msgs, err := h.messages.History(r.Context(), room.RoomID, UserIDFromContext(r.Context()), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	_ = json.NewEncoder(w).Encode(msgs)
}

// @Summary Posts del tablón del club
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path int true "clubId"
// @Success 200 {array} models.PostDoc
// @Router /clubs/{id}/posts [get]
func (h *ClubHandler) Posts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")

	posts, err := h.posts.ListPosts(r.Context(), "club", id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(posts)
}

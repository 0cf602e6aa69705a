package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/go-chi/chi/v5"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(s *service.PostService) *PostHandler {
	return &PostHandler{svc: s}
}

type createPostRequest struct {
	Scope    string `json:"scope"`
	ScopeID  string `json:"scope_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// @Summary Crear post
// @Description scope acepta school|class|club|group|subgroup ("course" se normaliza a "class")
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createPostRequest true "post"
// @Success 201 {object} models.PostDoc
// @Failure 400 {object} map[string]string
// @Router /posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreatePost(r.Context(), UserIDFromContext(r.Context()), service.CreatePostData{
		Scope:    req.Scope,
		ScopeID:  req.ScopeID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Listar posts por scope
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param scope query string false "school|class|club|group|subgroup (default: school)"
// @Param scope_id query string false "id del scope (no aplica a school)"
// @Success 200 {array} models.PostDoc
// @Router /posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	posts, err := h.svc.ListPosts(r.Context(), r.URL.Query().Get("scope"), r.URL.Query().Get("scope_id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(posts)
}

// @Summary Borrar post
// @Description El autor borra sus posts; los admin cualquiera
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param id path int true "postId"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	err := h.svc.DeletePost(r.Context(), id, UserIDFromContext(r.Context()), RoleFromContext(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"deleted": true})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	svc *service.AuthService
}

type userResponse struct {
	CanvasUserID string `json:"canvasUserId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		CanvasUserID: u.CanvasUserID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type canvasLoginRequest struct {
	CanvasToken string `json:"canvas_token"`
}

// @Summary Login con token de Canvas
// @Description Valida el token contra Canvas y devuelve un JWT propio
// @Tags auth
// @Accept json
// @Produce json
// @Param body body canvasLoginRequest true "token de Canvas"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) CanvasLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req canvasLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.CanvasLogin(r.Context(), req.CanvasToken)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// @Summary Registrar cuenta local
// @Description Cuenta email+password que no pasa por Canvas. role: student|admin (default admin)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} userResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.RegisterLocal(r.Context(), service.RegisterLocalData{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login admin (email + password)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body adminLoginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, u, err := h.svc.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

// @Summary Usuario autenticado (verifica el JWT)
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} userResponse
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	u, err := h.svc.GetUser(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

// @Summary Listar usuarios (ADMIN)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} userResponse
// @Router /users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		uCopy := u
		resp = append(resp, toUserResponse(&uCopy))
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Obtener usuario por id (ADMIN)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "canvasUserId"
// @Success 200 {object} userResponse
// @Router /users/{id} [get]
func (h *AuthHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	u, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/canvas"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     *repository.UserRepository
	canvas    *CanvasService
	canvasURL string
	jwtSecret []byte
}

type RegisterLocalData struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func NewAuthService(users *repository.UserRepository, canvasSvc *CanvasService, canvasURL, secret string) *AuthService {
	return &AuthService{users: users, canvas: canvasSvc, canvasURL: canvasURL, jwtSecret: []byte(secret)}
}

// ================== LOGIN CON CANVAS ==================

// CanvasLogin valida el token contra Canvas, hace upsert del usuario y
// devuelve un JWT propio. El token de Canvas no se guarda en ningún sitio.
func (s *AuthService) CanvasLogin(ctx context.Context, canvasToken string) (string, *models.UserDoc, error) {
	if canvasToken == "" {
		return "", nil, fmt.Errorf("canvas token is required")
	}

	cli := canvas.NewClient(s.canvasURL, canvasToken)
	self, err := cli.GetSelf(ctx)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	u := &models.UserDoc{
		CanvasUserID: strconv.Itoa(self.ID),
		Name:         self.Name,
		Email:        self.Email,
		Role:         "student",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return "", nil, err
	}

	// Tras el upsert releemos el doc: si ya existía conserva su role original.
	stored, err := s.users.FindByID(ctx, u.CanvasUserID)
	if err != nil {
		return "", nil, err
	}
	if stored == nil {
		stored = u
	}

	token, err := s.signToken(stored)
	if err != nil {
		return "", nil, err
	}

	// Sync inicial en segundo plano: si falla no rompe el login.
	if s.canvas != nil {
		go func(userID, canvasToken string) {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			if _, err := s.canvas.Sync(ctx, userID, canvasToken); err != nil {
				log.Printf("[auth] sync inicial de %s falló: %v", userID, err)
			}
		}(stored.CanvasUserID, canvasToken)
	}

	return token, stored, nil
}

// ================== CUENTAS LOCALES ==================

// RegisterLocal crea una cuenta local (email+password) que no pasa por
// Canvas. El role viene del body, por defecto "admin".
func (s *AuthService) RegisterLocal(ctx context.Context, data RegisterLocalData) (*models.UserDoc, error) {
	if data.Email == "" || data.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	role := data.Role
	if role == "" {
		role = "admin"
	}
	if role != "student" && role != "admin" {
		return nil, fmt.Errorf("invalid role (must be student|admin)")
	}

	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	u := &models.UserDoc{
		CanvasUserID: "local:" + data.Email,
		Name:         data.Name,
		Email:        data.Email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || u.PasswordHash == "" {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token, err := s.signToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) GetUser(ctx context.Context, canvasUserID string) (*models.UserDoc, error) {
	return s.users.FindByID(ctx, canvasUserID)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.UserDoc, error) {
	return s.users.List(ctx)
}

func (s *AuthService) signToken(u *models.UserDoc) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.CanvasUserID,
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

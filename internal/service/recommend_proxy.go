package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/cache"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"

	"github.com/go-resty/resty/v2"
)

// ErrRecServiceDown se traduce a 503 en el handler.
var ErrRecServiceDown = fmt.Errorf("recommendation service unavailable")

// RecommendProxy reenvía las peticiones de recomendación al servicio
// dedicado (recsvc) y cachea las respuestas en Redis. El header
// Authorization del caller se pasa tal cual hacia arriba.
type RecommendProxy struct {
	client *resty.Client
}

func NewRecommendProxy(baseURL string) *RecommendProxy {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)
	return &RecommendProxy{client: client}
}

func (s *RecommendProxy) req(ctx context.Context, auth string) *resty.Request {
	r := s.client.R().SetContext(ctx)
	if auth != "" {
		r.SetHeader("Authorization", auth)
	}
	return r
}

func recCacheKey(p models.Profile) string {
	// Cachea por perfil completo; dos perfiles iguales comparten respuesta.
	return fmt.Sprintf("rec:%s:%s:%s", p.Year, strings.Join(p.Classes, ","), p.Interests)
}

// Recommend consulta primero Redis y si no hay hit reenvía el perfil a
// recsvc. Un fallo de conexión se reporta como ErrRecServiceDown.
func (s *RecommendProxy) Recommend(ctx context.Context, auth string, p models.Profile) ([]models.RecItem, error) {
	var cached []models.RecItem
	if ok, err := cache.GetJSON(ctx, recCacheKey(p), &cached); err == nil && ok {
		return cached, nil
	}

	var out []models.RecItem
	resp, err := s.req(ctx, auth).
		SetBody(p).
		SetResult(&out).
		Post("/recommend")
	if err != nil {
		return nil, ErrRecServiceDown
	}
	if resp.IsError() {
		return nil, fmt.Errorf("recommendation service returned %d", resp.StatusCode())
	}

	// Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, recCacheKey(p), out, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}
	return out, nil
}

// Items reenvía el listado del corpus tal cual.
func (s *RecommendProxy) Items(ctx context.Context, auth string) ([]models.Item, error) {
	var out []models.Item
	resp, err := s.req(ctx, auth).
		SetResult(&out).
		Get("/items")
	if err != nil {
		return nil, ErrRecServiceDown
	}
	if resp.IsError() {
		return nil, fmt.Errorf("recommendation service returned %d", resp.StatusCode())
	}
	return out, nil
}

// Reload dispara el reentrenamiento del modelo en recsvc.
func (s *RecommendProxy) Reload(ctx context.Context, auth string) error {
	resp, err := s.req(ctx, auth).Post("/reload")
	if err != nil {
		return ErrRecServiceDown
	}
	if resp.IsError() {
		return fmt.Errorf("recommendation service returned %d", resp.StatusCode())
	}
	return nil
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/recommender"
)

type fixedSource struct{ items []models.Item }

func (s fixedSource) Name() string { return "fixed" }

func (s fixedSource) Load(context.Context) ([]models.Item, error) { return s.items, nil }

func readyEngine(t *testing.T) *recommender.Engine {
	t.Helper()
	e := recommender.NewEngine([]recommender.Source{fixedSource{items: []models.Item{
		{ID: 1, Name: "Robotics Club", Category: "Engineering", Description: "build robots and compete"},
		{ID: 2, Name: "Dance Crew", Category: "Arts", Description: "hip hop performances"},
	}}}, 5, 0)
	if err := e.Build(context.Background()); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return e
}

func TestEngineHandlerRecommend(t *testing.T) {
	h := NewEngineHandler(readyEngine(t))

	body := strings.NewReader(`{"year":"freshman","classes":["CS101"],"interests":"robots"}`)
	req := httptest.NewRequest(http.MethodPost, "/recommend", body)
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var items []models.RecItem
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	if len(items) == 0 || items[0].ID != 1 {
		t.Errorf("quería Robotics Club primero, salió %+v", items)
	}
}

func TestEngineHandlerItems(t *testing.T) {
	h := NewEngineHandler(readyEngine(t))

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	h.Items(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var items []models.Item
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("quería 2 ítems, salieron %d", len(items))
	}
}

func TestEngineHandlerSinModelo(t *testing.T) {
	// Motor sin Build: todo lo que depende del modelo contesta 503.
	h := NewEngineHandler(recommender.NewEngine(nil, 5, 0))

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("recommend: status = %d, quería 503", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/items", nil)
	rec = httptest.NewRecorder()
	h.Items(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("items: status = %d, quería 503", rec.Code)
	}
}

func TestEngineHandlerHealth(t *testing.T) {
	h := NewEngineHandler(readyEngine(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	if resp["status"] != "ok" || resp["ready"] != true {
		t.Errorf("respuesta inesperada: %v", resp)
	}
}

func TestEngineHandlerBodyInvalido(t *testing.T) {
	h := NewEngineHandler(readyEngine(t))

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader("no es json"))
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, quería 400", rec.Code)
	}
}

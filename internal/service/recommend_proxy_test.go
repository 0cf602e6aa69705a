package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
)

func TestRecommendProxyReenviaPerfil(t *testing.T) {
	var gotProfile models.Profile
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommend" || r.Method != http.MethodPost {
			t.Errorf("petición inesperada: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotProfile); err != nil {
			t.Fatalf("decodificando perfil: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.RecItem{
			{ID: 1, Name: "Robotics Club", MatchScore: 0.42},
		})
	}))
	defer srv.Close()

	proxy := NewRecommendProxy(srv.URL)
	items, err := proxy.Recommend(context.Background(), "Bearer abc", models.Profile{
		Year:      "sophomore",
		Classes:   []string{"CS101"},
		Interests: "robots",
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if gotProfile.Interests != "robots" {
		t.Errorf("el perfil no llegó completo: %+v", gotProfile)
	}
	if gotAuth != "Bearer abc" {
		t.Errorf("el Authorization no se reenvió: %q", gotAuth)
	}
	if len(items) != 1 || items[0].ID != 1 || items[0].MatchScore != 0.42 {
		t.Errorf("respuesta inesperada: %+v", items)
	}
}

func TestRecommendProxyServicioCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito: conexión rechazada

	proxy := NewRecommendProxy(srv.URL)

	if _, err := proxy.Recommend(context.Background(), "", models.Profile{}); err != ErrRecServiceDown {
		t.Errorf("Recommend: quería ErrRecServiceDown, salió %v", err)
	}
	if _, err := proxy.Items(context.Background(), ""); err != ErrRecServiceDown {
		t.Errorf("Items: quería ErrRecServiceDown, salió %v", err)
	}
	if err := proxy.Reload(context.Background(), ""); err != ErrRecServiceDown {
		t.Errorf("Reload: quería ErrRecServiceDown, salió %v", err)
	}
}

func TestRecommendProxyErrorUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	proxy := NewRecommendProxy(srv.URL)
	if _, err := proxy.Recommend(context.Background(), "", models.Profile{}); err == nil {
		t.Error("quería error con upstream en 500")
	} else if err == ErrRecServiceDown {
		t.Error("un 500 no es servicio caído, es error del servicio")
	}
}

func TestRecCacheKeyDistinguePerfiles(t *testing.T) {
	a := recCacheKey(models.Profile{Year: "senior", Classes: []string{"A", "B"}, Interests: "x"})
	b := recCacheKey(models.Profile{Year: "senior", Classes: []string{"A"}, Interests: "x"})
	if a == b {
		t.Errorf("perfiles distintos comparten cache key: %q", a)
	}

	again := recCacheKey(models.Profile{Year: "senior", Classes: []string{"A", "B"}, Interests: "x"})
	if a != again {
		t.Errorf("la cache key no es determinista: %q vs %q", a, again)
	}
}

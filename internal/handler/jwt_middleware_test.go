package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "secreto-de-test"

func signTestToken(t *testing.T, sub, role string, exp time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(exp).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return s
}

func TestJWTAuth(t *testing.T) {
	var gotUserID, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	})
	mw := JWTAuth(testSecret)(next)

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"sin header", "", http.StatusUnauthorized},
		{"sin Bearer", "Basic abc", http.StatusUnauthorized},
		{"token basura", "Bearer no-es-un-jwt", http.StatusUnauthorized},
		{"token expirado", "Bearer " + signTestToken(t, "12345", "student", -time.Hour), http.StatusUnauthorized},
		{"token válido", "Bearer " + signTestToken(t, "12345", "student", time.Hour), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotUserID, gotRole = "", ""

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, quería %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusOK {
				if gotUserID != "12345" || gotRole != "student" {
					t.Errorf("contexto: userID=%q role=%q", gotUserID, gotRole)
				}
			}
		})
	}
}

func TestJWTAuthRechazaSubNumerico(t *testing.T) {
	// Los tokens viejos con sub numérico no valen: el sub es el id de Canvas como string.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  123,
		"role": "student",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}

	mw := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+s)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, quería 401", rec.Code)
	}
}

func TestAdminOnly(t *testing.T) {
	handler := JWTAuth(testSecret)(AdminOnly()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	cases := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"student bloqueado", "student", http.StatusForbidden},
		{"admin pasa", "admin", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signTestToken(t, "u1", tc.role, time.Hour))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, quería %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

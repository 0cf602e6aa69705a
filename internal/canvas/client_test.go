package canvas

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNextLink(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{`<https://canvas.test/api/v1/courses?page=2>; rel="next", <https://canvas.test/api/v1/courses?page=9>; rel="last"`,
			"https://canvas.test/api/v1/courses?page=2"},
		{`<https://canvas.test/api/v1/courses?page=1>; rel="first"`, ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := nextLink(tt.header); got != tt.want {
			t.Errorf("nextLink(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestCoursesSiguePaginacion(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<%s/courses?page=2>; rel="next"`, srv.URL))
			fmt.Fprint(w, `[{"id":101,"name":"Cálculo I"}]`)
		case "2":
			fmt.Fprint(w, `[{"id":102,"name":"Historia"}]`)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	courses, err := c.Courses(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(courses) != 2 {
		t.Fatalf("courses = %d, want 2 (ambas páginas)", len(courses))
	}
	if courses[0].ID != 101 || courses[1].ID != 102 {
		t.Errorf("courses = %+v", courses)
	}
}

func TestGetSelfTokenInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"Invalid access token."}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "malo")
	if _, err := c.GetSelf(context.Background()); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

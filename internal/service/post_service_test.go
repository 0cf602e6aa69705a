package service

import (
	"context"
	"testing"
)

func TestNormalizeScope(t *testing.T) {
	cases := []struct{ in, want string }{
		{"course", "class"},
		{"class", "class"},
		{"school", "school"},
		{"club", "club"},
	}
	for _, tc := range cases {
		if got := normalizeScope(tc.in); got != tc.want {
			t.Errorf("normalizeScope(%q) = %q, quería %q", tc.in, got, tc.want)
		}
	}
}

// Las validaciones de CreatePost fallan antes de tocar la base de datos,
// así que se pueden probar sin Mongo.
func TestCreatePostValidaciones(t *testing.T) {
	svc := NewPostService(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		data CreatePostData
	}{
		{"scope inválido", CreatePostData{Scope: "galaxy", Title: "x"}},
		{"class sin scope_id", CreatePostData{Scope: "class", Title: "x"}},
		{"sin título ni contenido", CreatePostData{Scope: "school"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreatePost(ctx, "u1", tc.data); err == nil {
				t.Error("quería error de validación")
			}
		})
	}
}

func TestListPostsScopeInvalido(t *testing.T) {
	svc := NewPostService(nil)
	if _, err := svc.ListPosts(context.Background(), "galaxy", ""); err == nil {
		t.Error("quería error de scope inválido")
	}
}

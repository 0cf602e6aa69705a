package canvas

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrInvalidToken: Canvas rechazó el token (401).
var ErrInvalidToken = errors.New("token de Canvas inválido")

// Client habla con la API REST de Canvas LMS usando el token del usuario.
type Client struct {
	rc *resty.Client
}

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Course struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Group struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Member struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewClient(baseURL, apiToken string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiToken).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{rc: rc}
}

// GetSelf valida el token y devuelve el usuario actual (users/self).
func (c *Client) GetSelf(ctx context.Context) (*User, error) {
	var u User
	resp, err := c.rc.R().SetContext(ctx).SetResult(&u).Get("/users/self")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 401 {
		return nil, ErrInvalidToken
	}
	if resp.IsError() {
		return nil, fmt.Errorf("canvas users/self: %s", resp.Status())
	}
	return &u, nil
}

// Courses devuelve todos los cursos del usuario, siguiendo la paginación.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	return paginate[Course](ctx, c, "/courses")
}

// UserGroups devuelve todos los grupos donde el usuario es miembro.
func (c *Client) UserGroups(ctx context.Context) ([]Group, error) {
	return paginate[Group](ctx, c, "/users/self/groups")
}

func (c *Client) GroupMembers(ctx context.Context, groupID int) ([]Member, error) {
	return paginate[Member](ctx, c, fmt.Sprintf("/groups/%d/users", groupID))
}

func (c *Client) CourseUsers(ctx context.Context, courseID int) ([]Member, error) {
	return paginate[Member](ctx, c, fmt.Sprintf("/courses/%d/users", courseID))
}

// paginate sigue el header Link (rel="next") que usa Canvas para paginar.
func paginate[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var all []T

	url := path + "?per_page=50"
	for url != "" {
		var page []T
		resp, err := c.rc.R().SetContext(ctx).SetResult(&page).Get(url)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() == 401 {
			return nil, ErrInvalidToken
		}
		if resp.IsError() {
			return nil, fmt.Errorf("canvas %s: %s", path, resp.Status())
		}

		all = append(all, page...)
		url = nextLink(resp.Header().Get("Link"))
	}

	return all, nil
}

// nextLink extrae la URL con rel="next" de un header Link estilo
// `<https://...?page=2>; rel="next", <...>; rel="last"`.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		seg := strings.Split(part, ";")
		if len(seg) < 2 {
			continue
		}
		if strings.TrimSpace(seg[1]) != `rel="next"` {
			continue
		}
		u := strings.TrimSpace(seg[0])
		u = strings.TrimPrefix(u, "<")
		u = strings.TrimSuffix(u, ">")
		return u
	}
	return ""
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/repository"
)

type PostService struct {
	posts *repository.PostRepository
}

type CreatePostData struct {
	Scope    string
	ScopeID  string
	Title    string
	Content  string
	ImageURL string
}

func NewPostService(posts *repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// normalizeScope acepta "course" como alias de "class".
func normalizeScope(scope string) string {
	if scope == "course" {
		return "class"
	}
	return scope
}

func (s *PostService) CreatePost(ctx context.Context, userID string, data CreatePostData) (*models.PostDoc, error) {
	scope := normalizeScope(data.Scope)
	if !models.ValidPostScope(scope) {
		return nil, fmt.Errorf("invalid post scope")
	}
	if scope != "school" && data.ScopeID == "" {
		return nil, fmt.Errorf("scope_id is required for scope %s", scope)
	}
	if data.Title == "" && data.Content == "" {
		return nil, fmt.Errorf("post needs a title or content")
	}

	nextID, err := s.posts.GetNextPostID(ctx)
	if err != nil {
		return nil, err
	}

	p := &models.PostDoc{
		PostID:    nextID,
		Scope:     scope,
		ScopeID:   data.ScopeID,
		Author:    userID,
		Title:     data.Title,
		Content:   data.Content,
		ImageURL:  data.ImageURL,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.posts.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) ListPosts(ctx context.Context, scope, scopeID string) ([]models.PostDoc, error) {
	scope = normalizeScope(scope)
	if scope == "" {
		scope = "school"
	}
	if !models.ValidPostScope(scope) {
		return nil, fmt.Errorf("invalid post scope")
	}
	return s.posts.ListByScope(ctx, scope, scopeID)
}

// DeletePost: el autor borra sus posts; los admin pueden borrar cualquiera.
func (s *PostService) DeletePost(ctx context.Context, postID int, userID, role string) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("post not found")
	}
	if p.Author != userID && role != "admin" {
		return fmt.Errorf("you can only delete your own posts")
	}
	_, err = s.posts.Delete(ctx, postID)
	return err
}

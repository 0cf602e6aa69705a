package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/repository"
)

type MessageService struct {
	messages *repository.MessageRepository
	rooms    *repository.RoomRepository
}

func NewMessageService(messages *repository.MessageRepository, rooms *repository.RoomRepository) *MessageService {
	return &MessageService{messages: messages, rooms: rooms}
}

// Send persiste un mensaje; el emisor tiene que ser miembro de la sala.
func (s *MessageService) Send(ctx context.Context, roomID int, userID, content string) (*models.MessageDoc, error) {
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}

	ok, err := s.rooms.IsMember(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("not a member of this room")
	}

	nextID, err := s.messages.GetNextMessageID(ctx)
	if err != nil {
		return nil, err
	}

	m := &models.MessageDoc{
		MessageID: nextID,
		RoomID:    roomID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.messages.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// History devuelve los mensajes de una sala paginados, los más
// recientes primero. Solo para miembros.
func (s *MessageService) History(ctx context.Context, roomID int, userID string, limit, offset int) ([]models.MessageDoc, error) {
	ok, err := s.rooms.IsMember(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("not a member of this room")
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.messages.ListByRoom(ctx, roomID, limit, offset, false)
}

// Edit: solo el autor puede editar su mensaje.
func (s *MessageService) Edit(ctx context.Context, messageID int, userID, content string) error {
	if content == "" {
		return fmt.Errorf("message content is required")
	}

	m, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("message not found")
	}
	if m.UserID != userID {
		return fmt.Errorf("you can only edit your own messages")
	}

	_, err = s.messages.Edit(ctx, messageID, content)
	return err
}

// Delete: solo el autor puede borrar su mensaje.
func (s *MessageService) Delete(ctx context.Context, messageID int, userID string) error {
	m, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("message not found")
	}
	if m.UserID != userID {
		return fmt.Errorf("you can only delete your own messages")
	}
	return s.messages.Delete(ctx, messageID)
}

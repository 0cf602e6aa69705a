package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/repository"
)

type RoomService struct {
	rooms *repository.RoomRepository
}

type CreateRoomData struct {
	Name     string
	RoomType string
	ScopeID  string
}

func NewRoomService(rooms *repository.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

// CreateRoom crea una sala manual (las de clase/grupo las genera el sync).
func (s *RoomService) CreateRoom(ctx context.Context, userID string, data CreateRoomData) (*models.RoomDoc, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("room name is required")
	}
	if !models.ValidRoomType(data.RoomType) {
		return nil, fmt.Errorf("invalid room type")
	}

	roomID, err := s.rooms.GetNextRoomID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	room := &models.RoomDoc{
		RoomID:    roomID,
		Name:      data.Name,
		RoomType:  data.RoomType,
		ScopeID:   data.ScopeID,
		CreatedBy: userID,
		CreatedAt: now,
	}
	if err := s.rooms.Insert(ctx, room); err != nil {
		return nil, err
	}
	if err := s.rooms.AddMember(ctx, &models.RoomMemberDoc{
		RoomID:   roomID,
		UserID:   userID,
		JoinedAt: now,
	}); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, roomID int) (*models.RoomDoc, error) {
	return s.rooms.GetByID(ctx, roomID)
}

// MyRooms lista las salas del usuario, con filtro opcional por tipo.
func (s *RoomService) MyRooms(ctx context.Context, userID, roomType string) ([]models.RoomDoc, error) {
	if roomType != "" && !models.ValidRoomType(roomType) {
		return nil, fmt.Errorf("invalid room type")
	}
	return s.rooms.ListByUser(ctx, userID, roomType)
}

func (s *RoomService) JoinRoom(ctx context.Context, roomID int, userID string) error {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return fmt.Errorf("room not found")
	}
	return s.rooms.AddMember(ctx, &models.RoomMemberDoc{
		RoomID:   roomID,
		UserID:   userID,
		JoinedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *RoomService) LeaveRoom(ctx context.Context, roomID int, userID string) error {
	return s.rooms.RemoveMember(ctx, roomID, userID)
}

func (s *RoomService) IsMember(ctx context.Context, roomID int, userID string) (bool, error) {
	return s.rooms.IsMember(ctx, roomID, userID)
}

func (s *RoomService) Members(ctx context.Context, roomID int) ([]models.RoomMember, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("room not found")
	}
	return s.rooms.Members(ctx, roomID)
}

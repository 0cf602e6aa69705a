package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/cache"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/repository"
)

// el listado de clubs con conteo de miembros sale de una aggregation,
// así que se cachea unos minutos
const clubListCacheKey = "clubs:all"

type ClubService struct {
	clubs *repository.ClubRepository
	rooms *repository.RoomRepository
}

type CreateClubData struct {
	Name        string
	Description string
	Category    string
	Contact     string
	ImageURL    string
}

func NewClubService(clubs *repository.ClubRepository, rooms *repository.RoomRepository) *ClubService {
	return &ClubService{clubs: clubs, rooms: rooms}
}

// CreateClub crea el club, su sala de chat y deja al creador como leader
// de ambas cosas.
func (s *ClubService) CreateClub(ctx context.Context, userID string, data CreateClubData) (*models.ClubDoc, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("club name is required")
	}

	nextID, err := s.clubs.GetNextClubID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	club := &models.ClubDoc{
		ClubID:      nextID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Contact:     data.Contact,
		ImageURL:    data.ImageURL,
		CreatedBy:   userID,
		CreatedAt:   now,
	}
	if err := s.clubs.Insert(ctx, club); err != nil {
		return nil, err
	}

	if err := s.clubs.AddMember(ctx, &models.ClubMemberDoc{
		ClubID:   nextID,
		UserID:   userID,
		Role:     "leader",
		JoinedAt: now,
	}); err != nil {
		return nil, err
	}

	// Sala de chat del club.
	roomID, err := s.rooms.GetNextRoomID(ctx)
	if err != nil {
		return nil, err
	}
	room := &models.RoomDoc{
		RoomID:            roomID,
		Name:              data.Name,
		RoomType:          models.RoomTypeClub,
		ScopeID:           strconv.Itoa(nextID),
		IsSystemGenerated: true,
		CreatedBy:         userID,
		CreatedAt:         now,
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

	invalidateClubList(ctx)
	return club, nil
}

func (s *ClubService) ListClubs(ctx context.Context) ([]models.ClubWithMembers, error) {
	var cached []models.ClubWithMembers
	if ok, err := cache.GetJSON(ctx, clubListCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	clubs, err := s.clubs.ListAllWithMembers(ctx)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, clubListCacheKey, clubs, 5*60); err != nil {
		log.Printf("error cacheando listado de clubs en Redis: %v", err)
	}
	return clubs, nil
}

// invalidateClubList tira la cache del listado (cambió algo que afecta
// al conteo de miembros o al catálogo).
func invalidateClubList(ctx context.Context) {
	if err := cache.Delete(ctx, clubListCacheKey); err != nil {
		log.Printf("error invalidando cache de clubs: %v", err)
	}
}

func (s *ClubService) GetClub(ctx context.Context, clubID int) (*models.ClubDoc, error) {
	return s.clubs.GetByID(ctx, clubID)
}

func (s *ClubService) MyClubs(ctx context.Context, userID string) ([]models.ClubDoc, error) {
	return s.clubs.ListByUser(ctx, userID)
}

// JoinClub apunta al usuario al club y a su sala de chat.
func (s *ClubService) JoinClub(ctx context.Context, clubID int, userID string) error {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if club == nil {
		return fmt.Errorf("club not found")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.clubs.AddMember(ctx, &models.ClubMemberDoc{
		ClubID:   clubID,
		UserID:   userID,
		Role:     "member",
		JoinedAt: now,
	}); err != nil {
		return err
	}

	room, err := s.rooms.FindByScope(ctx, models.RoomTypeClub, strconv.Itoa(clubID))
	if err != nil {
		return err
	}
	if room != nil {
		if err := s.rooms.AddMember(ctx, &models.RoomMemberDoc{
			RoomID:   room.RoomID,
			UserID:   userID,
			JoinedAt: now,
		}); err != nil {
			return err
		}
	}
	invalidateClubList(ctx)
	return nil
}

// LeaveClub quita la membresía del club y de su sala.
func (s *ClubService) LeaveClub(ctx context.Context, clubID int, userID string) error {
	deleted, err := s.clubs.RemoveMember(ctx, clubID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("not a member of this club")
	}

	room, err := s.rooms.FindByScope(ctx, models.RoomTypeClub, strconv.Itoa(clubID))
	if err != nil {
		return err
	}
	if room != nil {
		if err := s.rooms.RemoveMember(ctx, room.RoomID, userID); err != nil {
			return err
		}
	}
	invalidateClubList(ctx)
	return nil
}

// Room devuelve la sala de chat del club (la que creó CreateClub).
func (s *ClubService) Room(ctx context.Context, clubID int) (*models.RoomDoc, error) {
	room, err := s.rooms.FindByScope(ctx, models.RoomTypeClub, strconv.Itoa(clubID))
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("club room not found")
	}
	return room, nil
}

func (s *ClubService) Members(ctx context.Context, clubID int) ([]models.ClubMember, error) {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, fmt.Errorf("club not found")
	}
	return s.clubs.Members(ctx, clubID)
}

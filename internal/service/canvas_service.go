package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/canvas"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"
	"github.com/taoTimTim/C2Hakathon2025/internal/repository"
)

type CanvasService struct {
	users     *repository.UserRepository
	rooms     *repository.RoomRepository
	canvasURL string
}

type SyncResult struct {
	CoursesSynced int `json:"courses_synced"`
	GroupsSynced  int `json:"groups_synced"`
	RoomsCreated  int `json:"rooms_created"`
	UsersUpserted int `json:"users_upserted"`
}

func NewCanvasService(users *repository.UserRepository, rooms *repository.RoomRepository, canvasURL string) *CanvasService {
	return &CanvasService{users: users, rooms: rooms, canvasURL: canvasURL}
}

// Sync trae los cursos y grupos del usuario desde Canvas y materializa
// una sala por cada uno. Las salas ya existentes se reutilizan; el
// usuario queda apuntado a todas.
func (s *CanvasService) Sync(ctx context.Context, userID, canvasToken string) (*SyncResult, error) {
	if canvasToken == "" {
		return nil, fmt.Errorf("canvas token is required")
	}

	cli := canvas.NewClient(s.canvasURL, canvasToken)
	res := &SyncResult{}

	courses, err := cli.Courses(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		scopeID := strconv.Itoa(c.ID)
		if err := s.ensureRoom(ctx, userID, c.Name, models.RoomTypeClass, scopeID, res); err != nil {
			return nil, err
		}
		res.CoursesSynced++

		// Compañeros de curso: upsert en lote para tenerlos resolubles
		// en las listas de miembros.
		people, err := cli.CourseUsers(ctx, c.ID)
		if err != nil {
			log.Printf("[canvas] curso %d: no se pudieron listar usuarios: %v", c.ID, err)
			continue
		}
		if n, err := s.upsertPeople(ctx, people); err == nil {
			res.UsersUpserted += n
		}
	}

	groups, err := cli.UserGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		scopeID := strconv.Itoa(g.ID)
		if err := s.ensureRoom(ctx, userID, g.Name, models.RoomTypeGroup, scopeID, res); err != nil {
			return nil, err
		}
		res.GroupsSynced++

		// El resto de integrantes del grupo entran directo a la sala.
		members, err := cli.GroupMembers(ctx, g.ID)
		if err != nil {
			log.Printf("[canvas] grupo %d: no se pudieron listar miembros: %v", g.ID, err)
			continue
		}
		if err := s.addGroupMembers(ctx, models.RoomTypeGroup, scopeID, members); err != nil {
			log.Printf("[canvas] grupo %d: error agregando miembros: %v", g.ID, err)
			continue
		}
		if n, err := s.upsertPeople(ctx, members); err == nil {
			res.UsersUpserted += n
		}
	}

	return res, nil
}

func (s *CanvasService) addGroupMembers(ctx context.Context, roomType, scopeID string, members []canvas.Member) error {
	room, err := s.rooms.FindByScope(ctx, roomType, scopeID)
	if err != nil || room == nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	docs := make([]models.RoomMemberDoc, 0, len(members))
	for _, m := range members {
		docs = append(docs, models.RoomMemberDoc{
			RoomID:   room.RoomID,
			UserID:   strconv.Itoa(m.ID),
			JoinedAt: now,
		})
	}
	return s.rooms.AddMembersBatch(ctx, docs)
}

// ensureRoom busca la sala por (tipo, scope) y la crea si no existe,
// dejando al usuario como miembro en cualquier caso.
func (s *CanvasService) ensureRoom(ctx context.Context, userID, name, roomType, scopeID string, res *SyncResult) error {
	room, err := s.rooms.FindByScope(ctx, roomType, scopeID)
	if err != nil {
		return err
	}
	if room == nil {
		roomID, err := s.rooms.GetNextRoomID(ctx)
		if err != nil {
			return err
		}
		room = &models.RoomDoc{
			RoomID:            roomID,
			Name:              name,
			RoomType:          roomType,
			ScopeID:           scopeID,
			IsSystemGenerated: true,
			CreatedBy:         userID,
			CreatedAt:         time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.rooms.Insert(ctx, room); err != nil {
			return err
		}
		res.RoomsCreated++
	}
	return s.rooms.AddMember(ctx, &models.RoomMemberDoc{
		RoomID:   room.RoomID,
		UserID:   userID,
		JoinedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// upsertPeople mete a los compañeros en lote. Canvas no expone el email
// de terceros, así que solo llega id y nombre.
func (s *CanvasService) upsertPeople(ctx context.Context, people []canvas.Member) (int, error) {
	if len(people) == 0 {
		return 0, nil
	}
	now := time.Now().UTC().Format(time.RFC3339)
	docs := make([]models.UserDoc, 0, len(people))
	for _, p := range people {
		docs = append(docs, models.UserDoc{
			CanvasUserID: strconv.Itoa(p.ID),
			Name:         p.Name,
			Role:         "student",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	if err := s.users.UpsertBatch(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

package models

// Tipos de sala válidos. "class" cubre también los cursos de Canvas.
const (
	RoomTypeClass    = "class"
	RoomTypeClub     = "club"
	RoomTypeGroup    = "group"
	RoomTypeSubgroup = "subgroup"
	RoomTypeSchool   = "school"
)

type RoomDoc struct {
	RoomID            int    `json:"roomId" bson:"roomId"`
	Name              string `json:"name" bson:"name"`
	RoomType          string `json:"roomType" bson:"roomType"`
	ScopeID           string `json:"scopeId,omitempty" bson:"scopeId,omitempty"`
	IsSystemGenerated bool   `json:"isSystemGenerated" bson:"isSystemGenerated"`
	CreatedBy         string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt         string `json:"createdAt" bson:"createdAt"`
}

type RoomMemberDoc struct {
	RoomID   int    `json:"roomId" bson:"roomId"`
	UserID   string `json:"userId" bson:"userId"`
	JoinedAt string `json:"joinedAt" bson:"joinedAt"`
}

// RoomMember es un miembro con sus datos de usuario resueltos.
type RoomMember struct {
	CanvasUserID string `json:"canvasUserId" bson:"canvasUserId"`
	Name         string `json:"name" bson:"name"`
	Role         string `json:"role" bson:"role"`
	JoinedAt     string `json:"joinedAt" bson:"joinedAt"`
}

func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeClass, RoomTypeClub, RoomTypeGroup, RoomTypeSubgroup, RoomTypeSchool:
		return true
	}
	return false
}

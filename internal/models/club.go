package models

type ClubDoc struct {
	ClubID      int    `json:"clubId" bson:"clubId"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category"`
	Contact     string `json:"contact" bson:"contact"`
	ImageURL    string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedBy   string `json:"createdBy" bson:"createdBy"`
	CreatedAt   string `json:"createdAt" bson:"createdAt"`
}

// ClubWithMembers es lo que devuelve /clubs/all (club + conteo de miembros).
type ClubWithMembers struct {
	ClubDoc      `bson:",inline"`
	MembersCount int `json:"membersCount" bson:"membersCount"`
}

type ClubMemberDoc struct {
	ClubID   int    `json:"clubId" bson:"clubId"`
	UserID   string `json:"userId" bson:"userId"`
	Role     string `json:"role" bson:"role"` // member | leader
	JoinedAt string `json:"joinedAt" bson:"joinedAt"`
}

// ClubMember es un miembro con su nombre resuelto (para /clubs/{id}/members).
type ClubMember struct {
	CanvasUserID string `json:"canvasUserId" bson:"canvasUserId"`
	Name         string `json:"name" bson:"name"`
	Role         string `json:"role" bson:"role"`
}

package models

// UserDoc es el usuario en Mongo. El id viene de Canvas (string),
// no lo generamos nosotros.
type UserDoc struct {
	CanvasUserID string `json:"canvasUserId" bson:"canvasUserId"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Role         string `json:"role" bson:"role"` // student | admin
	PasswordHash string `json:"-" bson:"passwordHash,omitempty"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string `json:"updatedAt" bson:"updatedAt"`
}

package models

type MessageDoc struct {
	MessageID int    `json:"messageId" bson:"messageId"`
	RoomID    int    `json:"roomId" bson:"roomId"`
	UserID    string `json:"userId" bson:"userId"`
	Content   string `json:"content" bson:"content"`
	IsEdited  bool   `json:"isEdited" bson:"isEdited"`
	EditedAt  string `json:"editedAt,omitempty" bson:"editedAt,omitempty"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

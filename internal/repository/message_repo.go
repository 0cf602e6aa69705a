package repository

import (
	"context"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/db"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{col: db.DB().Collection("messages")}
}

func (r *MessageRepository) GetNextMessageID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "messageId", Value: -1}})
	var m models.MessageDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return m.MessageID + 1, nil
}

func (r *MessageRepository) Insert(ctx context.Context, m *models.MessageDoc) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *MessageRepository) GetByID(ctx context.Context, messageID int) (*models.MessageDoc, error) {
	var m models.MessageDoc
	err := r.col.FindOne(ctx, bson.M{"messageId": messageID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

// ListByRoom pagina el historial de una sala. asc=true para el historial
// completo de un canal, false (más nuevos primero) para el chat.
func (r *MessageRepository) ListByRoom(ctx context.Context, roomID, limit, offset int, asc bool) ([]models.MessageDoc, error) {
	dir := -1
	if asc {
		dir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: dir}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, bson.M{"roomId": roomID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MessageDoc
	for cur.Next(ctx) {
		var m models.MessageDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// Edit marca el mensaje como editado y devuelve cuántos se modificaron.
func (r *MessageRepository) Edit(ctx context.Context, messageID int, content string) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"messageId": messageID},
		bson.M{"$set": bson.M{
			"content":  content,
			"isEdited": true,
			"editedAt": time.Now().UTC().Format(time.RFC3339),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MessageRepository) Delete(ctx context.Context, messageID int) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"messageId": messageID})
	return err
}

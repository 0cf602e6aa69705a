package repository

import (
	"context"

	"github.com/taoTimTim/C2Hakathon2025/internal/db"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoomRepository struct {
	rooms   *mongo.Collection
	members *mongo.Collection
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{
		rooms:   db.DB().Collection("rooms"),
		members: db.DB().Collection("room_members"),
	}
}

func (r *RoomRepository) GetNextRoomID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "roomId", Value: -1}})
	var doc models.RoomDoc
	err := r.rooms.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.RoomID + 1, nil
}

func (r *RoomRepository) Insert(ctx context.Context, room *models.RoomDoc) error {
	_, err := r.rooms.InsertOne(ctx, room)
	return err
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID int) (*models.RoomDoc, error) {
	var doc models.RoomDoc
	err := r.rooms.FindOne(ctx, bson.M{"roomId": roomID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &doc, err
}

// FindByScope busca la sala de un espacio concreto (p.ej. el room de un
// club, o el de un curso de Canvas).
func (r *RoomRepository) FindByScope(ctx context.Context, roomType, scopeID string) (*models.RoomDoc, error) {
	var doc models.RoomDoc
	err := r.rooms.FindOne(ctx, bson.M{"roomType": roomType, "scopeId": scopeID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &doc, err
}

// ListByUser devuelve las salas donde está el usuario, filtrando
// opcionalmente por tipo ("" = todas), más recientes primero.
func (r *RoomRepository) ListByUser(ctx context.Context, userID, roomType string) ([]models.RoomDoc, error) {
	cur, err := r.members.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []int
	for cur.Next(ctx) {
		var m models.RoomMemberDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		ids = append(ids, m.RoomID)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.RoomDoc{}, nil
	}

	filter := bson.M{"roomId": bson.M{"$in": ids}}
	if roomType != "" {
		filter["roomType"] = roomType
	}

	cur2, err := r.rooms.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur2.Close(ctx)

	var out []models.RoomDoc
	for cur2.Next(ctx) {
		var doc models.RoomDoc
		if err := cur2.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur2.Err()
}

func (r *RoomRepository) AddMember(ctx context.Context, m *models.RoomMemberDoc) error {
	_, err := r.members.UpdateOne(ctx,
		bson.M{"roomId": m.RoomID, "userId": m.UserID},
		bson.M{"$set": bson.M{"joinedAt": m.JoinedAt}},
		options.Update().SetUpsert(true),
	)
	return err
}

// AddMembersBatch agrega varios miembros de golpe (sync de Canvas).
func (r *RoomRepository) AddMembersBatch(ctx context.Context, ms []models.RoomMemberDoc) error {
	if len(ms) == 0 {
		return nil
	}

	ops := make([]mongo.WriteModel, 0, len(ms))
	for _, m := range ms {
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"roomId": m.RoomID, "userId": m.UserID}).
			SetUpdate(bson.M{"$set": bson.M{"joinedAt": m.JoinedAt}}).
			SetUpsert(true))
	}

	_, err := r.members.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	return err
}

func (r *RoomRepository) RemoveMember(ctx context.Context, roomID int, userID string) error {
	_, err := r.members.DeleteOne(ctx, bson.M{"roomId": roomID, "userId": userID})
	return err
}

func (r *RoomRepository) IsMember(ctx context.Context, roomID int, userID string) (bool, error) {
	err := r.members.FindOne(ctx, bson.M{"roomId": roomID, "userId": userID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Members resuelve los miembros de una sala con sus datos de usuario.
func (r *RoomRepository) Members(ctx context.Context, roomID int) ([]models.RoomMember, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "roomId", Value: roomID}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "canvasUserId"},
			{Key: "as", Value: "user"},
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "canvasUserId", Value: "$user.canvasUserId"},
			{Key: "name", Value: "$user.name"},
			{Key: "role", Value: "$user.role"},
			{Key: "joinedAt", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}

	cur, err := r.members.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RoomMember
	for cur.Next(ctx) {
		var m models.RoomMember
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

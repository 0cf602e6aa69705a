package repository

import (
	"context"

	"github.com/taoTimTim/C2Hakathon2025/internal/db"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClubRepository struct {
	clubs   *mongo.Collection
	members *mongo.Collection
}

func NewClubRepository() *ClubRepository {
	return &ClubRepository{
		clubs:   db.DB().Collection("clubs"),
		members: db.DB().Collection("club_members"),
	}
}

func (r *ClubRepository) GetNextClubID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "clubId", Value: -1}})
	var c models.ClubDoc
	err := r.clubs.FindOne(ctx, bson.M{}, opts).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return c.ClubID + 1, nil
}

func (r *ClubRepository) Insert(ctx context.Context, c *models.ClubDoc) error {
	_, err := r.clubs.InsertOne(ctx, c)
	return err
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID int) (*models.ClubDoc, error) {
	var c models.ClubDoc
	err := r.clubs.FindOne(ctx, bson.M{"clubId": clubID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &c, err
}

// ListAllWithMembers devuelve todos los clubes con su conteo de miembros
// ($lookup contra club_members), ordenados por nombre.
func (r *ClubRepository) ListAllWithMembers(ctx context.Context) ([]models.ClubWithMembers, error) {
	pipeline := bson.A{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "club_members"},
			{Key: "localField", Value: "clubId"},
			{Key: "foreignField", Value: "clubId"},
			{Key: "as", Value: "members"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "membersCount", Value: bson.D{{Key: "$size", Value: "$members"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "members", Value: 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}

	cur, err := r.clubs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ClubWithMembers
	for cur.Next(ctx) {
		var c models.ClubWithMembers
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

// ListByUser devuelve los clubes donde el usuario es miembro.
func (r *ClubRepository) ListByUser(ctx context.Context, userID string) ([]models.ClubDoc, error) {
	cur, err := r.members.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []int
	for cur.Next(ctx) {
		var m models.ClubMemberDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		ids = append(ids, m.ClubID)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.ClubDoc{}, nil
	}

	cur2, err := r.clubs.Find(ctx,
		bson.M{"clubId": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur2.Close(ctx)

	var out []models.ClubDoc
	for cur2.Next(ctx) {
		var c models.ClubDoc
		if err := cur2.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur2.Err()
}

func (r *ClubRepository) AddMember(ctx context.Context, m *models.ClubMemberDoc) error {
	_, err := r.members.UpdateOne(ctx,
		bson.M{"clubId": m.ClubID, "userId": m.UserID},
		bson.M{"$set": bson.M{"role": m.Role, "joinedAt": m.JoinedAt}},
		options.Update().SetUpsert(true),
	)
	return err
}

// RemoveMember devuelve cuántos documentos se borraron (0 = no era miembro).
func (r *ClubRepository) RemoveMember(ctx context.Context, clubID int, userID string) (int64, error) {
	res, err := r.members.DeleteOne(ctx, bson.M{"clubId": clubID, "userId": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Members resuelve los miembros con su nombre desde users.
func (r *ClubRepository) Members(ctx context.Context, clubID int) ([]models.ClubMember, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "clubId", Value: clubID}}}},
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
			{Key: "role", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}

	cur, err := r.members.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ClubMember
	for cur.Next(ctx) {
		var m models.ClubMember
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

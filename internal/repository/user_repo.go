package repository

import (
	"context"

	"github.com/taoTimTim/C2Hakathon2025/internal/db"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{col: db.DB().Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, canvasUserID string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"canvasUserId": canvasUserID}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// Upsert crea o actualiza un usuario por su id de Canvas ($set parcial).
func (r *UserRepository) Upsert(ctx context.Context, u *models.UserDoc) error {
	update := bson.M{
		"$set": bson.M{
			"name":      u.Name,
			"updatedAt": u.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"role":      u.Role,
			"createdAt": u.CreatedAt,
		},
	}
	if u.Email != "" {
		update["$set"].(bson.M)["email"] = u.Email
	}

	_, err := r.col.UpdateOne(ctx,
		bson.M{"canvasUserId": u.CanvasUserID},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

// UpsertBatch hace upsert masivo de usuarios (sync de Canvas).
func (r *UserRepository) UpsertBatch(ctx context.Context, users []models.UserDoc) error {
	if len(users) == 0 {
		return nil
	}

	ops := make([]mongo.WriteModel, 0, len(users))
	for _, u := range users {
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"canvasUserId": u.CanvasUserID}).
			SetUpdate(bson.M{
				"$set": bson.M{"name": u.Name, "updatedAt": u.UpdatedAt},
				"$setOnInsert": bson.M{
					"role":      u.Role,
					"createdAt": u.CreatedAt,
				},
			}).
			SetUpsert(true))
	}

	_, err := r.col.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	return err
}

func (r *UserRepository) List(ctx context.Context) ([]models.UserDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.UserDoc
	for cur.Next(ctx) {
		var u models.UserDoc
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}

package repository

import (
	"context"

	"github.com/taoTimTim/C2Hakathon2025/internal/db"
	"github.com/taoTimTim/C2Hakathon2025/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository() *PostRepository {
	return &PostRepository{col: db.DB().Collection("posts")}
}

func (r *PostRepository) GetNextPostID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "postId", Value: -1}})
	var p models.PostDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return p.PostID + 1, nil
}

func (r *PostRepository) Insert(ctx context.Context, p *models.PostDoc) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, postID int) (*models.PostDoc, error) {
	var p models.PostDoc
	err := r.col.FindOne(ctx, bson.M{"postId": postID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByScope: scope "school" lista el tablón general; el resto filtra
// también por scopeId. Más recientes primero.
func (r *PostRepository) ListByScope(ctx context.Context, scope, scopeID string) ([]models.PostDoc, error) {
	filter := bson.M{"scope": scope}
	if scope != "school" {
		filter["scopeId"] = scopeID
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PostDoc
	for cur.Next(ctx) {
		var p models.PostDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// Delete devuelve cuántos posts se borraron (0 = no existía).
func (r *PostRepository) Delete(ctx context.Context, postID int) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

package db

import (
	"context"
	"log"
	"time"

	"github.com/taoTimTim/C2Hakathon2025/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// Connect intenta conectar a Mongo y devuelve el error en vez de abortar.
// Lo usa el recsvc, donde la DB es una fuente opcional del corpus.
func Connect(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
	return nil
}

// InitMongo conecta o muere. El API no puede arrancar sin Mongo.
func InitMongo(cfg *config.Config) {
	if err := Connect(cfg); err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}
}

func DB() *mongo.Database {
	return mongoDB
}

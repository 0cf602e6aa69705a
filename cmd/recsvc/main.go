package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"github.com/taoTimTim/C2Hakathon2025/internal/config"
	"github.com/taoTimTim/C2Hakathon2025/internal/db"
	"github.com/taoTimTim/C2Hakathon2025/internal/handler"
	"github.com/taoTimTim/C2Hakathon2025/internal/recommender"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg := config.Load()

	// Fuentes CSV: las que falten se saltan al cargar.
	sources := []recommender.Source{
		recommender.CSVSource{Path: filepath.Join(cfg.CorpusDir, "clubs.csv")},
		recommender.CSVSource{Path: filepath.Join(cfg.CorpusDir, "events.csv")},
		recommender.CSVSource{Path: filepath.Join(cfg.CorpusDir, "groups.csv")},
	}

	// Mongo es opcional aquí: sin DB el corpus vive solo de los CSV.
	if cfg.CorpusFromDB {
		if err := db.Connect(cfg); err != nil {
			log.Printf("⚠️ Mongo no disponible, corpus solo desde CSV: %v", err)
		} else {
			sources = append(sources, recommender.MongoSource{
				Col:   db.DB().Collection("clubs"),
				Label: "mongo:clubs",
			})
		}
	}

	engine := recommender.NewEngine(sources, cfg.TopK, cfg.MinScore)
	if err := engine.Build(context.Background()); err != nil {
		log.Fatalf("❌ no se pudo entrenar el modelo: %v", err)
	}

	h := handler.NewEngineHandler(engine)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	r.Get("/items", h.Items)
	r.Post("/recommend", h.Recommend)
	r.Post("/reload", h.Reload)

	log.Printf("recsvc escuchando en :%s", cfg.RecsvcPort)
	log.Fatal(http.ListenAndServe(":"+cfg.RecsvcPort, r))
}

package main

import (
	"log"
	"net/http"

	_ "github.com/taoTimTim/C2Hakathon2025/docs" // swagger docs

	"github.com/taoTimTim/C2Hakathon2025/internal/cache"
	"github.com/taoTimTim/C2Hakathon2025/internal/chat"
	"github.com/taoTimTim/C2Hakathon2025/internal/config"
	"github.com/taoTimTim/C2Hakathon2025/internal/db"
	"github.com/taoTimTim/C2Hakathon2025/internal/handler"
	"github.com/taoTimTim/C2Hakathon2025/internal/repository"
	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Campus Connect API
// @version 1.0
// @description Gateway del campus: auth con Canvas, clubs, chat y recomendaciones
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	clubRepo := repository.NewClubRepository()
	roomRepo := repository.NewRoomRepository()
	messageRepo := repository.NewMessageRepository()
	postRepo := repository.NewPostRepository()

	// services
	canvasSvc := service.NewCanvasService(userRepo, roomRepo, cfg.CanvasAPIURL)
	authSvc := service.NewAuthService(userRepo, canvasSvc, cfg.CanvasAPIURL, cfg.JWTSecret)
	clubSvc := service.NewClubService(clubRepo, roomRepo)
	roomSvc := service.NewRoomService(roomRepo)
	messageSvc := service.NewMessageService(messageRepo, roomRepo)
	postSvc := service.NewPostService(postRepo)
	// proxy que habla con el servicio de recomendación + cache Redis
	recProxy := service.NewRecommendProxy(cfg.RecommendationURL)

	// hub de chat (WebSocket)
	hub := chat.NewHub(roomSvc, messageSvc)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	clubH := handler.NewClubHandler(clubSvc, messageSvc, postSvc)
	roomH := handler.NewRoomHandler(roomSvc, messageSvc)
	messageH := handler.NewMessageHandler(messageSvc)
	postH := handler.NewPostHandler(postSvc)
	groupH := handler.NewGroupHandler(roomSvc, messageSvc, postSvc)
	canvasH := handler.NewCanvasHandler(canvasSvc)
	recH := handler.NewRecommendHandler(recProxy)
	wsH := handler.NewWSHandler(hub, authSvc, cfg.JWTSecret)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authH.CanvasLogin)
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/admin/login", authH.AdminLogin)

		// ===========================
		// Rutas protegidas con JWT
		// ===========================
		r.Group(func(r chi.Router) {
			r.Use(handler.JWTAuth(cfg.JWTSecret))

			r.Get("/auth/verify", authH.Verify)

			r.Post("/sync", canvasH.Sync)

			// clubs
			r.Route("/clubs", func(r chi.Router) {
				r.Get("/", clubH.List)
				r.Post("/", clubH.Create)
				r.Get("/mine", clubH.Mine)
				r.Get("/{id}", clubH.Get)
				r.Post("/{id}/join", clubH.Join)
				r.Post("/{id}/leave", clubH.Leave)
				r.Get("/{id}/members", clubH.Members)
				r.Get("/{id}/messages", clubH.Messages)
				r.Get("/{id}/posts", clubH.Posts)
			})

			// salas de chat
			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", roomH.Mine)
				r.Post("/", roomH.Create)
				r.Get("/{id}", roomH.Get)
				r.Post("/{id}/join", roomH.Join)
				r.Post("/{id}/leave", roomH.Leave)
				r.Get("/{id}/members", roomH.Members)
				r.Get("/{id}/messages", roomH.History)
			})

			// mensajes (REST, el tiempo real va por /ws)
			r.Route("/messages", func(r chi.Router) {
				r.Post("/", messageH.Send)
				r.Put("/{id}", messageH.Edit)
				r.Delete("/{id}", messageH.Delete)
			})

			// tablones
			r.Route("/posts", func(r chi.Router) {
				r.Get("/", postH.List)
				r.Post("/", postH.Create)
				r.Delete("/{id}", postH.Delete)
			})

			// grupos de Canvas
			r.Route("/groups", func(r chi.Router) {
				r.Get("/", groupH.Mine)
				r.Get("/{id}/members", groupH.Members)
				r.Get("/{id}/messages", groupH.Messages)
				r.Get("/{id}/posts", groupH.Posts)
			})

			// recomendaciones (proxy)
			r.Post("/recommend", recH.Recommend)
			r.Get("/recommend/items", recH.Items)

			// ---- Endpoints solo ADMIN ----
			r.Group(func(r chi.Router) {
				r.Use(handler.AdminOnly())

				r.Get("/users", authH.ListUsers)
				r.Get("/users/{id}", authH.GetUserByID)
				r.Post("/recommend/reload", recH.Reload)
			})
		})
	})

	// WebSocket de chat (el JWT va en ?token=)
	r.Get("/ws", wsH.Chat)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}

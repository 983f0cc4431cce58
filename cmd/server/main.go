package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vedran77/ripple/internal/config"
	"github.com/vedran77/ripple/internal/database"
	postgresrepo "github.com/vedran77/ripple/internal/repository/postgres"
	"github.com/vedran77/ripple/internal/service"
	"github.com/vedran77/ripple/internal/transport/http/handlers"
	"github.com/vedran77/ripple/internal/transport/http/middleware"
	"github.com/vedran77/ripple/internal/upload"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal(err)
	}
	if err := database.Seed(ctx, pool); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)
	likeRepo := postgresrepo.NewLikeRepo(pool)
	commentRepo := postgresrepo.NewCommentRepo(pool)
	followRepo := postgresrepo.NewFollowRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo, followRepo)
	postService := service.NewPostService(postRepo, likeRepo, commentRepo)

	// Upload sink
	uploads := upload.NewDiskStore(cfg.UploadDir)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, uploads)
	postHandler := handlers.NewPostHandler(postService, uploads)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Public
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/auth/me", authHandler.Me)

		r.Get("/users", userHandler.List)
		r.Post("/users/me", userHandler.UpdateProfile)
		r.Get("/users/{id}", userHandler.Get)
		r.Post("/users/{id}/follow", userHandler.ToggleFollow)

		r.Get("/posts", postHandler.Feed)
		r.Post("/posts", postHandler.Create)
		r.Post("/posts/{id}/like", postHandler.ToggleLike)
		r.Get("/posts/{id}/comments", postHandler.Comments)
		r.Post("/posts/{id}/comments", postHandler.AddComment)

		r.Get("/search", postHandler.Search)
	})

	// Uploaded media, read-only
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"postsAPI/cmd/app"
	"postsAPI/internal/config"
	handlers "postsAPI/internal/handler"
	"postsAPI/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(db, repo, services, cfg)

	authRequired := middleware.AuthMiddleware(cfg)

	// setting up routes
	router := mux.NewRouter()

	router.HandleFunc("/", handlers.HomeHandler).Methods("GET")
	router.HandleFunc("/health", handler.HealthHandler).Methods("GET")

	router.HandleFunc("/signup", handler.Signup).Methods("POST")
	router.HandleFunc("/login", handler.Login).Methods("POST")
	router.Handle("/username", authRequired(http.HandlerFunc(handler.Username))).Methods("GET")

	router.HandleFunc("/posts", handler.CreatePost).Methods("POST")
	router.HandleFunc("/posts", handler.GetPosts).Methods("GET")
	router.HandleFunc("/posts/author/{authorName}", handler.GetPostsByAuthor).Methods("GET")
	router.HandleFunc("/posts/author/{authorName}", handler.DeletePostsByAuthor).Methods("DELETE")
	router.HandleFunc("/posts/dates/{startDate}/{endDate}", handler.GetPostsByDateRange).Methods("GET")
	router.HandleFunc("/posts/{id}", handler.GetPost).Methods("GET")
	router.HandleFunc("/posts/{id}", handler.UpdatePost).Methods("PUT")
	router.HandleFunc("/posts/{id}", handler.DeletePost).Methods("DELETE")

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFoundHandler)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

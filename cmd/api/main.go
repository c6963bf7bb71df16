package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"yatube/cmd/app"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		logrus.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	router := mux.NewRouter()

	// открытые страницы
	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/group/{slug}/", handler.GroupPosts).Methods(http.MethodGet)
	router.HandleFunc("/profile/{username}/", handler.Profile).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}/", handler.PostDetail).Methods(http.MethodGet)
	router.HandleFunc("/about/author/", handler.AboutAuthor).Methods(http.MethodGet)
	router.HandleFunc("/about/tech/", handler.AboutTech).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// аутентификация
	router.HandleFunc("/auth/signup/", handler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/auth/login/", handler.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/auth/refresh/", handler.Refresh).Methods(http.MethodPost)

	// закрытые страницы: аноним уходит на /auth/login/?next=<url>
	router.Handle("/create/",
		middleware.RequireAuth(http.HandlerFunc(handler.PostCreate))).
		Methods(http.MethodGet, http.MethodPost)
	router.Handle("/posts/{id}/edit/",
		middleware.RequireAuth(http.HandlerFunc(handler.PostEdit))).
		Methods(http.MethodGet, http.MethodPost)
	router.Handle("/posts/{id}/comment/",
		middleware.RequireAuth(http.HandlerFunc(handler.AddComment))).
		Methods(http.MethodPost)
	router.Handle("/follow/",
		middleware.RequireAuth(http.HandlerFunc(handler.FollowIndex))).
		Methods(http.MethodGet)
	router.Handle("/profile/{username}/follow/",
		middleware.RequireAuth(http.HandlerFunc(handler.ProfileFollow))).
		Methods(http.MethodPost)
	router.Handle("/profile/{username}/unfollow/",
		middleware.RequireAuth(http.HandlerFunc(handler.ProfileUnfollow))).
		Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.Identify(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logrus.Infof("Сервер запущен на %s", addr)
	logrus.Infof("База данных: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logrus.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/andrewpaige1/questionbank-console/auth"
	"github.com/andrewpaige1/questionbank-console/config"
	"github.com/andrewpaige1/questionbank-console/handlers"
	"github.com/andrewpaige1/questionbank-console/logger"
	"github.com/andrewpaige1/questionbank-console/middleware"
	"github.com/andrewpaige1/questionbank-console/services"
	"github.com/andrewpaige1/questionbank-console/storage"
	"github.com/andrewpaige1/questionbank-console/store"
	"github.com/andrewpaige1/questionbank-console/validation"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("CONSOLE_ENVIRONMENT") != "production" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logs := logger.New("questionbank-console", cfg.LogLevel)

	db, err := config.Connect(cfg.StorageURL)
	if err != nil {
		logs.WithError(err).Fatal("Failed to open storage")
	}
	persisted := storage.NewDB(db)

	client := api.NewClient(cfg.APIBaseURL, auth.StoredToken{Storage: persisted},
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(logs.WithField("component", "api")),
	)
	authService := services.NewAuth(client)
	subtopicService := services.NewSubtopics(client)

	catalog := store.New(services.NewSubjects(client), subtopicService, services.NewQuestions(client), logs)
	session := auth.NewManager(authService, persisted, logs)
	session.Init()

	console := &handlers.ConsoleHandler{
		Store:     catalog,
		Session:   session,
		Validator: validation.New(),
		Verifier:  authService,
		Children:  subtopicService,
		Log:       logs.WithField("component", "handlers"),
		LoginPath: "/login",
	}
	if !cfg.IsDevelopment {
		console.Cookies = handlers.CookiePolicy{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure}
	}

	guard := middleware.RouteGuard(cfg.PublicPaths, console.LoginPath)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/", guard(console.Routes()))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestLogger(logs.WithField("component", "http"))(mux))

	logs.WithField("addr", cfg.Addr()).Info("console listening")
	if err := http.ListenAndServe(cfg.Addr(), corsHandler); err != nil {
		logs.WithError(err).Fatal("server stopped")
	}
}

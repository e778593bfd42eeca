package main

import (
	"log"
	"net/http"
	"os"

	"github.com/daybook/backend/internal/auth"
	"github.com/daybook/backend/internal/database"
	"github.com/daybook/backend/internal/insights"
	"github.com/daybook/backend/internal/middleware"
	"github.com/daybook/backend/internal/questions"
	"github.com/daybook/backend/internal/timeblocks"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Stores and services
	questionStore := questions.NewStore(db)
	if err := questionStore.Seed(); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}
	questionService := questions.NewService(questionStore)
	insightService := insights.NewService(insights.NewStore(db))

	// Handlers
	authHandler := auth.NewHandler(db)
	questionHandler := questions.NewHandler(questionService)
	insightHandler := insights.NewHandler(insightService)
	blockHandler := timeblocks.NewHandler(timeblocks.NewStore(db))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	// Daily questions
	protected.HandleFunc("/questions/today", questionHandler.GetToday).Methods("GET")
	protected.HandleFunc("/questions/recommended", questionHandler.GetRecommended).Methods("GET")
	protected.HandleFunc("/questions/answers", questionHandler.ListAnswers).Methods("GET")
	protected.HandleFunc("/questions/ratings", questionHandler.ListRatings).Methods("GET")
	protected.HandleFunc("/questions/{id:[0-9]+}/answer", questionHandler.AnswerQuestion).Methods("POST")
	protected.HandleFunc("/questions/{id:[0-9]+}/rating", questionHandler.RateQuestion).Methods("POST")
	protected.HandleFunc("/questions/{id:[0-9]+}/rating", questionHandler.GetQuestionRating).Methods("GET")

	// AI generation
	protected.HandleFunc("/ai/questions/generate", questionHandler.GenerateQuestions).Methods("POST")
	protected.HandleFunc("/ai/ping", questionHandler.PingAI).Methods("POST")

	// Insights
	protected.HandleFunc("/insights/dashboard", insightHandler.GetDashboard).Methods("GET")
	protected.HandleFunc("/insights/streak", insightHandler.GetStreak).Methods("GET")
	protected.HandleFunc("/insights/activity", insightHandler.GetActivity).Methods("GET")
	protected.HandleFunc("/insights/review", insightHandler.GetReview).Methods("GET")
	protected.HandleFunc("/insights/growth", insightHandler.GetGrowth).Methods("GET")

	// Time blocks & categories
	protected.HandleFunc("/blocks", blockHandler.ListBlocks).Methods("GET")
	protected.HandleFunc("/blocks", blockHandler.CreateBlock).Methods("POST")
	protected.HandleFunc("/blocks/{id:[0-9]+}", blockHandler.UpdateBlock).Methods("PUT")
	protected.HandleFunc("/blocks/{id:[0-9]+}", blockHandler.DeleteBlock).Methods("DELETE")
	protected.HandleFunc("/categories", blockHandler.ListCategories).Methods("GET")
	protected.HandleFunc("/categories", blockHandler.CreateCategory).Methods("POST")
	protected.HandleFunc("/categories/{id:[0-9]+}", blockHandler.UpdateCategory).Methods("PUT")
	protected.HandleFunc("/categories/{id:[0-9]+}", blockHandler.DeleteCategory).Methods("DELETE")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

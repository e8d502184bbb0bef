package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/auth"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/config"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/database"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/handlers"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

func main() {
	// 1. Load Environment Variables (.env is optional in deployed envs)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Error loading configuration:", err)
	}

	// 2. Database Connection
	db := database.Connect(cfg.Database.DSN)

	// 3. Gmail Integration (the transactional mailer)
	log.Println("Initializing Gmail Client...")
	var gmailService *gmail.Service
	if httpClient := auth.GetGmailClient(cfg.Gmail.CredentialsFile, cfg.Gmail.TokenFile); httpClient != nil {
		gmailService, err = gmail.NewService(context.Background(), option.WithHTTPClient(httpClient))
		if err != nil {
			log.Printf("⚠️  Failed to create Gmail Service: %v", err)
		} else {
			log.Println("✅ Gmail Service connected successfully.")
		}
	}
	mailer := services.NewGmailMailer(gmailService, cfg.Gmail.Sender, cfg.App.BaseURL)

	// 4. Initialize Core Services (Dependencies)
	llmService := services.NewLLMService(cfg.LLM.Model)
	notificationService := services.NewNotificationService(db)
	jobService := services.NewJobService(db, mailer)
	applicationService := services.NewApplicationService(db, mailer, notificationService)
	finalizerService := services.NewFinalizerService(db)
	reviewService := services.NewReviewService(db)
	bookmarkService := services.NewBookmarkService(db)
	profileService := services.NewProfileService(db)
	taskService := services.NewTaskService(db, llmService)
	invoiceService := services.NewInvoiceService()
	calendarService := services.NewCalendarService()

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService, finalizerService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	profileHandler := handlers.NewProfileHandler(profileService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	taskHandler := handlers.NewTaskHandler(taskService, calendarService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)

	// 6. Identity provider
	verifier := auth.NewSupabaseVerifier(cfg.Supabase.URL, cfg.Supabase.Key)

	// 7. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8. Define Routes
	api := r.Group("/api/v1")
	api.Use(auth.Middleware(verifier))
	{
		// Profiles
		api.GET("/me", profileHandler.Me)
		api.PUT("/me", profileHandler.UpdateMe)
		api.GET("/providers/:id", profileHandler.Get)
		api.GET("/providers/:id/reviews", reviewHandler.ListForProvider)
		api.GET("/providers/:id/rating", reviewHandler.Summary)

		// Jobs
		api.POST("/jobs", jobHandler.Create)
		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)
		api.PUT("/jobs/:id", jobHandler.Update)
		api.PATCH("/jobs/:id/status", jobHandler.UpdateStatus)
		api.DELETE("/jobs/:id", jobHandler.Delete)
		api.POST("/jobs/:id/finish", jobHandler.Finish)
		api.GET("/jobs/:id/finishable", jobHandler.CanFinish)
		api.GET("/worked-with", jobHandler.WorkedWith)

		// Applications
		api.POST("/jobs/:id/applications", applicationHandler.Apply)
		api.GET("/jobs/:id/applications", applicationHandler.ListForJob)
		api.GET("/applications", applicationHandler.ListMine)
		api.PATCH("/applications/:id/status", applicationHandler.Decide)
		api.POST("/applications/:id/done", applicationHandler.MarkDone)

		// Reviews
		api.POST("/reviews", reviewHandler.Submit)

		// Bookmarks
		api.POST("/jobs/:id/bookmark", bookmarkHandler.Toggle)
		api.GET("/jobs/:id/bookmark", bookmarkHandler.Status)
		api.GET("/bookmarks", bookmarkHandler.List)

		// Notifications
		api.GET("/notifications", notificationHandler.List)
		api.POST("/notifications/:id/read", notificationHandler.MarkRead)

		// Tasks
		api.POST("/tasks", taskHandler.Create)
		api.GET("/tasks", taskHandler.List)
		api.PATCH("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)
		api.POST("/tasks/generate", taskHandler.Generate)
		api.GET("/tasks/calendar", taskHandler.ExportCalendar)

		// Invoices
		api.POST("/invoices/render", invoiceHandler.Render)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

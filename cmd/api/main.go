// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartlinkhq/heartlink-backend/internal/analysis"
	"github.com/heartlinkhq/heartlink-backend/internal/auth"
	"github.com/heartlinkhq/heartlink-backend/internal/common/database"
	"github.com/heartlinkhq/heartlink-backend/internal/config"
	"github.com/heartlinkhq/heartlink-backend/internal/match"
	"github.com/heartlinkhq/heartlink-backend/internal/notify"
	"github.com/heartlinkhq/heartlink-backend/internal/photo"
	"github.com/heartlinkhq/heartlink-backend/internal/profile"
)

var startTime = time.Now()

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting HeartLink Matchmaking API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Println("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect to PostgreSQL
	log.Println("\n🗄️  Step 4: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL successfully")

	// 5. Connect to Redis (optional)
	log.Println("\n📮 Step 5: Connecting to Redis...")
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without cache", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		log.Println("⚠️  Redis URL not configured, skipping Redis connection")
	}

	// 6. Run database migrations
	log.Println("\n🔨 Step 6: Running database migrations...")
	if err := runMigrations(db); err != nil {
		log.Fatal("❌ Failed to run migrations: ", err)
	}
	log.Println("✅ Database migrations completed")

	// 7. Initialize Auth system
	log.Println("\n🔐 Step 7: Initializing authentication system...")
	authRepo := auth.NewPostgresRepository(db)
	authService := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)
	log.Println("✅ Authentication system initialized")

	// 8. Initialize facial analysis provider
	log.Println("\n🔬 Step 8: Initializing facial analysis provider...")
	var provider analysis.Provider
	switch cfg.AnalysisProvider {
	case "facepp":
		provider, err = analysis.NewFacePPProvider(
			cfg.FacePPAPIKey,
			cfg.FacePPAPISecret,
			cfg.FacePPDetectURL,
			cfg.AnalysisTimeout,
		)
		if err != nil {
			log.Fatal("❌ Failed to init Face++ provider:", err)
		}
		log.Println("   ✅ Using Face++ for photo analysis")
	default:
		provider = analysis.NewMockProvider()
		log.Println("   ⚠️  Using mock analysis provider (development mode)")
	}

	// 9. Initialize Photo system
	log.Println("\n📷 Step 9: Initializing photo system...")
	photoRepo := photo.NewPostgresRepository(db)

	var uploader photo.Uploader
	if cfg.UseS3 {
		uploader, err = photo.NewS3Uploader(cfg.S3BucketName, cfg.AWSRegion)
		if err != nil {
			log.Printf("   ⚠️  Failed to init S3, using local storage: %v", err)
			uploader = photo.NewLocalUploader(cfg.LocalUploadDir, cfg.BaseURL+"/uploads")
		} else {
			log.Println("   ✅ Using S3 for photo storage")
		}
	} else {
		uploader = photo.NewLocalUploader(cfg.LocalUploadDir, cfg.BaseURL+"/uploads")
		log.Println("   ✅ Using local storage for photos")
	}

	photoService := photo.NewService(photoRepo, uploader, provider, photo.Options{
		MaxPhotosPerUser: cfg.MaxPhotosPerUser,
		RemoteStorage:    cfg.UseS3,
	})
	photoHandler := photo.NewHandler(photoService, cfg.MaxPhotoSizeBytes)
	go startPhotoRescore(photoService)
	log.Println("✅ Photo system initialized")

	// 10. Initialize Profile system
	log.Println("\n👤 Step 10: Initializing profile system...")
	profileRepo := profile.NewPostgresRepository(db)
	profileService := profile.NewService(profileRepo, profile.Options{
		MaxInterests: cfg.MaxInterests,
	})
	profileHandler := profile.NewHandler(profileService)
	log.Println("✅ Profile system initialized")

	// 11. Initialize Notification system
	log.Println("\n🔔 Step 11: Initializing notification system...")
	notifyRepo := notify.NewPostgresRepository(db)

	var emailSender notify.EmailSender
	switch cfg.EmailProvider {
	case "sendgrid":
		emailSender, err = notify.NewSendGridEmailSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
		if err != nil {
			log.Fatal("❌ Failed to init SendGrid:", err)
		}
		log.Println("   ✅ Using SendGrid for emails")
	default:
		emailSender = notify.NewMockEmailSender()
		log.Println("   ⚠️  Using mock email sender (development mode)")
	}

	var smsSender notify.SMSSender
	switch cfg.SMSProvider {
	case "twilio":
		smsSender, err = notify.NewTwilioSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
		if err != nil {
			log.Fatal("❌ Failed to init Twilio:", err)
		}
		log.Println("   ✅ Using Twilio for SMS")
	default:
		smsSender = notify.NewMockSMSSender()
		log.Println("   ⚠️  Using mock SMS sender (development mode)")
	}

	notifyService := notify.NewService(notifyRepo, emailSender, smsSender, notify.Options{
		EmailEnabled: cfg.EnableEmailNotifications,
		SMSEnabled:   cfg.EnableSMSNotifications,
	})
	log.Println("✅ Notification system initialized")

	// 12. Initialize Match engine
	log.Println("\n💘 Step 12: Initializing match engine...")
	engine, err := match.NewEngine(match.DefaultTable(), match.DefaultWeights())
	if err != nil {
		log.Fatal("❌ Failed to build match engine:", err)
	}

	matchRepo := match.NewCachedRepository(match.NewPostgresRepository(db), redisClient)
	if redisClient != nil {
		log.Println("   ✅ Photo attribute cache enabled")
	}

	matchHub := match.NewHub()
	go matchHub.Run()
	log.Println("   ✅ Match WebSocket hub started")

	matchService := match.NewService(matchRepo, engine, matchHub, notifyService, match.ServiceOptions{
		CandidatePoolLimit:   cfg.CandidatePoolLimit,
		ActiveUserWindowDays: cfg.ActiveUserWindowDay,
	})
	matchHandler := match.NewHandler(matchService, matchHub)

	matchScheduler := match.NewScheduler(matchService, cfg.DailyPickHour, cfg.PickCleanupHour)
	matchScheduler.Start(context.Background())
	log.Printf("   ✅ Daily pick scheduler started (picks %02d:00, cleanup %02d:00)", cfg.DailyPickHour, cfg.PickCleanupHour)
	log.Println("✅ Match engine initialized")

	// 13. Setup routes
	log.Println("\n🛣️  Step 13: Setting up routes...")
	router := mux.NewRouter()

	// Static files for uploads
	if !cfg.UseS3 {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/",
				http.FileServer(http.Dir(cfg.LocalUploadDir))))
		log.Println("   ✅ Static file server configured")
	}

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth.RegisterRoutes(router, authHandler, authMiddleware)
	log.Println("   ✅ Auth routes registered")

	profile.RegisterRoutes(router, profileHandler, authMiddleware)
	log.Println("   ✅ Profile routes registered")

	photo.RegisterRoutes(router, photoHandler, authMiddleware)
	log.Println("   ✅ Photo routes registered")

	match.RegisterRoutes(router, matchHandler, authMiddleware)
	log.Println("   ✅ Match routes registered")

	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 14. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// startPhotoRescore periodically retries analysis for photos still carrying
// fallback scores
func startPhotoRescore(photoService photo.Service) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		updated, err := photoService.RescoreDefaults(ctx)
		if err != nil {
			log.Printf("Failed to rescore photos: %v", err)
		} else if updated > 0 {
			log.Printf("Rescored %d photos with fresh analysis", updated)
		}
		cancel()
	}
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// loggingMiddleware logs all requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// runMigrations executes database migrations
func runMigrations(db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			phone TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS profiles (
			user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			display_name TEXT NOT NULL,
			bio TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL,
			interests TEXT[] NOT NULL DEFAULT '{}',
			relationship_intent TEXT NOT NULL DEFAULT '',
			social_boundary TEXT NOT NULL DEFAULT '',
			appearance_preference TEXT NOT NULL DEFAULT '',
			last_active_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_profiles_gender_active
			ON profiles(gender, last_active_at DESC)`,

		`CREATE TABLE IF NOT EXISTS photos (
			id UUID PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			url TEXT NOT NULL,
			storage_path TEXT NOT NULL,
			is_primary BOOLEAN NOT NULL DEFAULT FALSE,
			style_score DOUBLE PRECISION NOT NULL DEFAULT 5.5,
			taste_score DOUBLE PRECISION NOT NULL DEFAULT 5.5,
			coordination_score DOUBLE PRECISION NOT NULL DEFAULT 5.5,
			quality_score DOUBLE PRECISION NOT NULL DEFAULT 5.5,
			beauty_score DOUBLE PRECISION NOT NULL DEFAULT 5.5,
			face_detected BOOLEAN NOT NULL DEFAULT FALSE,
			analyzed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_photos_user_primary
			ON photos(user_id, is_primary)`,

		`CREATE TABLE IF NOT EXISTS daily_picks (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			recommended_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			score DOUBLE PRECISION NOT NULL,
			reasons JSONB NOT NULL DEFAULT '[]',
			dimension_scores JSONB NOT NULL DEFAULT '{}',
			pick_date DATE NOT NULL DEFAULT CURRENT_DATE,
			is_seen BOOLEAN NOT NULL DEFAULT FALSE,
			expires_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, recommended_user_id, pick_date)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_daily_picks_user_date
			ON daily_picks(user_id, pick_date)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

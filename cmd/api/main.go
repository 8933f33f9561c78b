// cmd/api/main.go
// Main entry point for the discovery service
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"log"
	"math/rand"
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

	"github.com/amoradating/amora-backend/internal/common/database"
	"github.com/amoradating/amora-backend/internal/config"
	"github.com/amoradating/amora-backend/internal/discovery"
	"github.com/amoradating/amora-backend/internal/reference"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Amora Discovery API")
	log.Println("========================================")

	// 1. Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found (%v), using environment variables", err)
	}

	// 2. Load and validate configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed: ", err)
	}
	log.Println("✅ Configuration loaded")

	// 3. Connect to PostgreSQL
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL: ", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL")

	// 4. Connect to Redis (optional)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without cache", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis")
		}
	}

	// 5. Run database migrations
	if err := runMigrations(db); err != nil {
		log.Fatal("❌ Failed to run migrations: ", err)
	}
	log.Println("✅ Database migrations completed")

	// 6. Build the reference table once; everything reads it
	// concurrently without locks from here on.
	refTable := reference.NewTable()
	log.Println("✅ Reference data loaded")

	// 7. Wire the discovery engine
	repo := discovery.NewPostgresRepository(db)
	interactions := discovery.NewInteractionCache(redisClient, repo, cfg.InteractionCacheTTL)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	store := discovery.NewLocationStore(repo, rng)
	retriever := discovery.NewRetriever(repo, interactions, refTable, rng)
	scorer := discovery.NewScorer(refTable, discovery.ScoringWeights{
		Base:        cfg.ScoreWeightBase,
		Preference:  cfg.ScoreWeightPreference,
		Cultural:    cfg.ScoreWeightCultural,
		DistanceFit: cfg.ScoreWeightDistanceFit,
	}, rng)
	defaults := discovery.NewDefaultsGenerator(refTable)

	service := discovery.NewService(repo, repo, store, retriever, scorer, defaults)
	handler := discovery.NewHandler(service)

	// 8. Router
	router := mux.NewRouter()
	discovery.RegisterRoutes(router, handler)
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 9. Start server with graceful shutdown
	go func() {
		log.Printf("🌍 Listening on port %s (%s)", cfg.Port, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("❌ Forced shutdown: ", err)
	}
	log.Println("✅ Server stopped")
}

// runMigrations creates the tables this service owns. The users and
// user_interactions tables belong to the identity and interaction
// services; they are created here only so local development works
// against an empty database.
func runMigrations(db *sqlx.DB) error {
	schema := `
    CREATE TABLE IF NOT EXISTS users (
        id BIGSERIAL PRIMARY KEY,
        country_code CHAR(2) NOT NULL,
        economic_tier INT NOT NULL DEFAULT 3,
        birth_date DATE NOT NULL,
        active BOOLEAN NOT NULL DEFAULT TRUE,
        banned BOOLEAN NOT NULL DEFAULT FALSE
    );

    CREATE TABLE IF NOT EXISTS user_interactions (
        user_id BIGINT NOT NULL,
        target_id BIGINT NOT NULL,
        kind TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        PRIMARY KEY (user_id, target_id, kind)
    );

    CREATE TABLE IF NOT EXISTS user_locations (
        user_id BIGINT PRIMARY KEY,
        true_latitude DOUBLE PRECISION NOT NULL,
        true_longitude DOUBLE PRECISION NOT NULL,
        fuzzed_latitude DOUBLE PRECISION NOT NULL,
        fuzzed_longitude DOUBLE PRECISION NOT NULL,
        privacy_level TEXT NOT NULL,
        fuzz_radius_m DOUBLE PRECISION NOT NULL,
        search_radius_km DOUBLE PRECISION NOT NULL DEFAULT 0,
        country_code CHAR(2) NOT NULL,
        region TEXT,
        city TEXT,
        source TEXT NOT NULL DEFAULT 'manual',
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );

    CREATE TABLE IF NOT EXISTS preference_profiles (
        user_id BIGINT PRIMARY KEY,
        preferred_countries TEXT[] NOT NULL DEFAULT '{}',
        excluded_countries TEXT[] NOT NULL DEFAULT '{}',
        preferred_regions TEXT[] NOT NULL DEFAULT '{}',
        excluded_regions TEXT[] NOT NULL DEFAULT '{}',
        preferred_cities TEXT[] NOT NULL DEFAULT '{}',
        cultural_groups TEXT[] NOT NULL DEFAULT '{}',
        languages TEXT[] NOT NULL DEFAULT '{}',
        international BOOLEAN NOT NULL DEFAULT FALSE,
        preferred_tier INT NOT NULL DEFAULT 0,
        tier_tolerance INT NOT NULL DEFAULT 1,
        max_distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
        travel_willingness_km DOUBLE PRECISION NOT NULL DEFAULT 0,
        country_weights JSONB NOT NULL DEFAULT '{}',
        cultural_openness DOUBLE PRECISION NOT NULL DEFAULT 0.5,
        confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    );

    CREATE INDEX IF NOT EXISTS idx_interactions_user ON user_interactions (user_id);
    CREATE INDEX IF NOT EXISTS idx_users_country ON users (country_code) WHERE active AND NOT banned;
    `

	_, err := db.Exec(schema)
	return err
}

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"kioskqr/internal/catalog"
	"kioskqr/internal/db"
	"kioskqr/internal/router"
	"kioskqr/internal/session"

	"github.com/joho/godotenv"
)

const (
	defaultSessionTimeout = 90 * time.Second
	defaultMenuCacheTTL   = 10 * time.Minute
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	catalogSource := os.Getenv("CATALOG_SOURCE")
	if catalogSource == "" {
		catalogSource = "postgres"
	}

	// ───────────────────────── CATALOG ─────────────────────────
	var repo catalog.Repository
	switch catalogSource {
	case "memory":
		repo = catalog.NewInMemoryRepository(catalog.DemoProducts()...)
		log.Println("Serving the built-in demo menu (CATALOG_SOURCE=memory)")
	case "postgres":
		if os.Getenv("DATABASE_URL") == "" {
			log.Fatal("❌ Missing env var: DATABASE_URL")
		}
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		repo = catalog.NewPostgresRepository(pgDB)
	default:
		log.Fatalf("❌ Unknown CATALOG_SOURCE: %s", catalogSource)
	}

	catalogService := catalog.NewService(repo, menuCacheTTL())

	// ───────────────────────── SESSIONS ─────────────────────────
	manager := session.NewManager(catalogService, sessionTimeout())

	// ───────────────────────── GIN ─────────────────────────
	r := router.New(catalogService, manager)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("kiosk API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func sessionTimeout() time.Duration {
	raw := os.Getenv("SESSION_TIMEOUT_SECONDS")
	if raw == "" {
		return defaultSessionTimeout
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 1 {
		log.Fatalf("❌ Invalid SESSION_TIMEOUT_SECONDS: %s", raw)
	}
	return time.Duration(seconds) * time.Second
}

func menuCacheTTL() time.Duration {
	raw := os.Getenv("MENU_CACHE_TTL_SECONDS")
	if raw == "" {
		return defaultMenuCacheTTL
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 1 {
		log.Fatalf("❌ Invalid MENU_CACHE_TTL_SECONDS: %s", raw)
	}
	return time.Duration(seconds) * time.Second
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"menuswap-api/cache"
	"menuswap-api/models"
	"menuswap-api/search"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens, read from env or fallback
var JWTSecret []byte

// TokenTTL is how long issued tokens stay valid (JWT_TTL_HOURS).
var TokenTTL = 24 * time.Hour

// Env gates the moderation filters: in "production" only APPROVED menus and
// verified restaurants are visible. It is resolved once at boot and passed
// into the search engine explicitly.
var Env = search.EnvDevelopment

// BaseURL is the public site origin used in sitemap locations.
var BaseURL string

// UploadsDir is where submitted menu files land.
var UploadsDir string

// Stats is an optional Redis cache for the stats endpoint; nil when REDIS_ADDR
// is unset.
var Stats *cache.Cache

// SearchRules holds the sanitizer/filter deny-lists, optionally overridden
// from SEARCH_RULES_FILE.
var SearchRules *search.Rules

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and resolves all runtime configuration.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JWTSecret = []byte(getEnv("JWT_SECRET", "menuswap_super_secret_2024"))
	if hours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24")); err == nil && hours > 0 {
		TokenTTL = time.Duration(hours) * time.Hour
	}
	BaseURL = getEnv("SITE_URL", "http://localhost:8080")
	UploadsDir = getEnv("UPLOADS_DIR", "./uploads")

	if getEnv("APP_ENV", "development") == "production" {
		Env = search.EnvProduction
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		Stats = cache.New(addr, 5*time.Minute)
		log.Println("✅ Stats cache enabled at", addr)
	}

	SearchRules = search.DefaultRules()
	if path := os.Getenv("SEARCH_RULES_FILE"); path != "" {
		rules, err := search.LoadRules(path)
		if err != nil {
			log.Fatal("Failed to load search rules:", err)
		}
		SearchRules = rules
		log.Println("✅ Search rules loaded from", path)
	}
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "menuswap.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
		&models.MenuItem{},
		&models.MenuStatusHistory{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

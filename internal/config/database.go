package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"busmate/internal/store"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB opens the account store and brings the schema up to the current
// version. The default backend is an embedded sqlite file; setting
// DATABASE_URL switches to Postgres with the same models and repositories.
func InitDB() {
	// Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	dialector := sqlite.Open(getEnv("DB_PATH", "busmate.db") + "?_foreign_keys=on")
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	}

	// TranslateError keeps duplicate-key detection backend-neutral.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := store.Open(db, store.SchemaVersion); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	// Assign to global
	DB = db
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

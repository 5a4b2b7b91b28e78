package database

import (
	"fmt"
	"os"
	"strings"

	"blogly/models"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultDSN mirrors the original deployment default.
const DefaultDSN = "postgres://localhost/blogly?sslmode=disable"

// ConnectDB opens the database named by DATABASE_URL, falling back to
// DefaultDSN. Environment variables are loaded from .env first when present.
func ConnectDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using system environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = DefaultDSN
	}
	return Open(dsn)
}

// Open connects to the given DSN. Postgres URLs use the postgres driver;
// anything else is treated as a sqlite path, which keeps local development
// and tests on a plain file database.
func Open(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: sqlLogger()})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Route the many2many association through the explicit join model so the
	// composite key and table name stay under our control.
	if err := db.SetupJoinTable(&models.Post{}, "Tags", &models.PostTag{}); err != nil {
		return nil, fmt.Errorf("error configuring join table: %w", err)
	}
	return db, nil
}

// sqlLogger honors SQL_ECHO: when set, every statement is logged.
func sqlLogger() gormlogger.Interface {
	level := gormlogger.Warn
	if echo := os.Getenv("SQL_ECHO"); echo == "1" || strings.EqualFold(echo, "true") {
		level = gormlogger.Info
	}
	return gormlogger.Default.LogMode(level)
}

// CreateAll creates the users, posts, tags, and post_tags tables. Schema
// management is an explicit operation, never run during request handling.
func CreateAll(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Post{}, &models.Tag{})
}

// DropAll removes every table, dependents first.
func DropAll(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&models.PostTag{},
		&models.Post{},
		&models.Tag{},
		&models.User{},
	)
}

package database

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table, one row per key per day.
type APIUsage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	KeyID          uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date           string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount   int    `gorm:"default:0" json:"request_count"`
	ShiftsChecked  int    `gorm:"default:0" json:"shifts_checked"`
	IssuesReported int    `gorm:"default:0" json:"issues_reported"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoredShift is the scheduling store's shift row. Remediation's single
// external write lands here.
type StoredShift struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"index;not null" json:"employee_id"`
	Start      time.Time `gorm:"not null" json:"start"`
	End        time.Time `gorm:"not null" json:"end"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// Holiday represents the holidays table consulted by the engine's holiday
// lookup. Dates are business-timezone yyyy-MM-dd strings.
type Holiday struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"unique;not null" json:"date"`
	Name string `gorm:"not null" json:"name"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "validator.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	// Auto Migration
	db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{}, &StoredShift{}, &Holiday{})

	return db
}

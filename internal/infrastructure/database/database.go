package database

import (
	"time"

	"essenteil-backend/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Pool limits match the Postgres pool the service ran with before:
// at most 20 connections, idle ones recycled after 30s.
const (
	maxOpenConns    = 20
	connMaxIdleTime = 30 * time.Second
)

// Open opens a GORM DB from DSN (Supabase/Postgres pooler URL).
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") when using connection poolers (e.g. PgBouncer, Supabase, Render).
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
	return db, nil
}

// AutoMigrate runs migrations for the listing tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Listing{}, &domain.ListingCategory{})
}

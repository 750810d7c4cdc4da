// Package store owns every user and artifact record for the lifetime of the
// process. State lives in an in-memory SQLite database and is gone on
// restart; nothing here is durable by design.
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sahayak-project/sahayak-backend/internal/models"
)

// DefaultDSN keeps the whole database in process memory. The shared cache
// makes every pooled connection see the same data.
const DefaultDSN = "file::memory:?cache=shared"

// ErrEmailTaken is returned by CreateUser when the email is already registered
var ErrEmailTaken = errors.New("email already registered")

// ErrUserNotFound is returned by UserByEmail for an unseen email
var ErrUserNotFound = errors.New("user not found")

// Store is the process-lifetime record store injected into handlers
type Store struct {
	db *gorm.DB
}

// Open connects to the backing database and migrates the schema.
// Pass DefaultDSN for the standard volatile in-memory store.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// A single connection serialises all reads and writes. SQLite in-memory
	// databases also vanish when their last connection closes, so the pool
	// must never drop to zero.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&models.User{}, &models.Artifact{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection and with it all stored state
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// CreateUser inserts a new user record. Returns ErrEmailTaken without
// touching the existing record if the email is already registered.
func (s *Store) CreateUser(user *models.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", user.Email).First(&existing).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(user).Error
	})
}

// UserByEmail looks up a user record by email. Returns ErrUserNotFound if
// the email has never been seen.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin refreshes the user's last login timestamp
func (s *Store) TouchLastLogin(user *models.User, at time.Time) error {
	if err := s.db.Model(user).Update("last_login_at", at).Error; err != nil {
		return err
	}
	user.LastLoginAt = &at
	return nil
}

// SaveArtifact persists a generated artifact. Artifacts are written exactly
// once and never updated or deleted afterwards.
func (s *Store) SaveArtifact(artifact *models.Artifact) error {
	return s.db.Create(artifact).Error
}

// ArtifactsByUser returns all artifacts of one kind owned by userID,
// newest first.
func (s *Store) ArtifactsByUser(userID, kind string) ([]models.Artifact, error) {
	artifacts := []models.Artifact{}
	err := s.db.
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at DESC, id DESC").
		Find(&artifacts).Error
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// CountByUser returns the number of stored artifacts per kind for userID.
// Every kind is present in the result, zero included.
func (s *Store) CountByUser(userID string) (map[string]int64, error) {
	type kindCount struct {
		Kind  string
		Count int64
	}

	rows := []kindCount{}
	err := s.db.Model(&models.Artifact{}).
		Select("kind, count(*) as count").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(models.Kinds))
	for _, kind := range models.Kinds {
		counts[kind] = 0
	}
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}

// Reset removes every stored record. Intended for test lifecycles.
func (s *Store) Reset() error {
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.Artifact{}).Error; err != nil {
		return err
	}
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.User{}).Error
}

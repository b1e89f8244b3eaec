// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model
// and the per-owner acceptance toggle.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/candidbox/go-inbox-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateUser inserts a new User row. The id and username come from the
// external identity provider; acceptance defaults to true per product rule.
func CreateUser(ctx context.Context, db *gorm.DB, id, username string) (*domain.User, error) {
	u := &domain.User{
		ID:                id,
		Username:          username,
		AcceptingMessages: true,
		CreatedAt:         time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// EnsureUser provisions the local row mirroring an identity-provider user on
// first sight. Existing rows are left untouched (the acceptance toggle is
// state owned by this service, not by the provider). Safe to call on every
// authenticated request.
func EnsureUser(ctx context.Context, db *gorm.DB, id, username string) (*domain.User, error) {
	u := &domain.User{
		ID:                id,
		Username:          username,
		AcceptingMessages: true,
		CreatedAt:         time.Now().UTC(),
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(u).Error
	if err != nil {
		return nil, err
	}
	return GetUser(ctx, db, id)
}

// GetUser fetches a single user by its provider-assigned id. If the record
// does not exist, it returns ErrNotFound. On other DB errors, the raw error
// is returned.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByUsername resolves the owner of a public submission link. Returns
// ErrNotFound when the username does not exist.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAcceptance reads the acceptance toggle for a user. Returns ErrNotFound
// when the user does not exist.
func GetAcceptance(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	u, err := GetUser(ctx, db, id)
	if err != nil {
		return false, err
	}
	return u.AcceptingMessages, nil
}

// SetAcceptance writes the acceptance toggle for a user and returns the new
// value. The write is a plain last-write-wins update of a single boolean; no
// message rows are touched. Setting the flag to its current value is a
// successful no-op (RowsAffected may be 0 for an unchanged value on some
// drivers, so existence is verified explicitly).
func SetAcceptance(ctx context.Context, db *gorm.DB, id string, accepting bool) (bool, error) {
	if _, err := GetUser(ctx, db, id); err != nil {
		return false, err
	}
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("accepting_messages", accepting).Error
	if err != nil {
		return false, err
	}
	return accepting, nil
}

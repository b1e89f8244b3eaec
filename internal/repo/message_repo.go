// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message
// model. Messages are append-and-delete only: there is no update path.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/candidbox/go-inbox-backend/internal/domain"
)

// CreateMessage inserts a new message row owned by userID. The message ID is
// a freshly generated UUID (unique across the whole store, not just per
// owner) and CreatedAt is set to UTC. The insert either fully succeeds or
// leaves no row behind.
func CreateMessage(ctx context.Context, db *gorm.DB, userID, content string, purpose domain.Purpose) (*domain.Message, error) {
	m := &domain.Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Purpose:   purpose,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages returns all messages owned by userID, newest first. Ordering
// is deterministic (CreatedAt DESC, ID DESC tiebreak) so repeated calls over
// an unchanged set yield the same sequence. A limit > 0 caps the result.
func ListMessages(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.Message, error) {
	var out []domain.Message
	q := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetMessage fetches a message by ID regardless of owner; the service layer
// compares UserID against the caller to distinguish Forbidden from NotFound.
// Returns ErrNotFound when no row exists.
func GetMessage(ctx context.Context, db *gorm.DB, id string) (*domain.Message, error) {
	var m domain.Message
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMessage permanently removes the message identified by id and owned
// by userID. The row is deleted from the table outright; no copy of the
// content survives. If no row matches (missing, already deleted, or owned by
// someone else), it returns ErrNotFound; ownership is expected to have been
// checked by the caller beforehand.
func DeleteMessage(ctx context.Context, db *gorm.DB, userID, id string) error {
	res := db.WithContext(ctx).
		Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountMessages returns the total number of messages owned by userID.
// On DB error, it returns the error.
func CountMessages(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

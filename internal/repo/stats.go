// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used primarily
// for conditional responses (ETag generation) on the dashboard's polling
// endpoint.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/candidbox/go-inbox-backend/internal/domain"
)

// MessagesStats returns aggregate metadata for an owner's inbox: the total
// number of messages and the greatest UpdatedAt timestamp among them.
//
// Since messages are never mutated, the (count, maxUpdatedAt) pair changes
// exactly when the underlying set changes, which makes it a cheap weak-ETag
// source for the list endpoint.
//
// Return values:
//   - count:        total messages for userID
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func MessagesStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Message{}).Where("user_id = ?", userID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

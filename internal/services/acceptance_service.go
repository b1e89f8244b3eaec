// Package services – AcceptanceService
//
// This file implements the AcceptanceService, which exposes the per-owner
// acceptance toggle as two independent, idempotent operations: read state
// and write state. The toggle is a single boolean with last-write-wins
// semantics under concurrency; flipping it never touches existing messages,
// so the dashboard can render optimistically and reconcile on the next read.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/candidbox/go-inbox-backend/internal/repo"
)

// AcceptanceService owns reads and writes of the acceptance toggle.
type AcceptanceService struct {
	// DB is the database handle used for all toggle operations.
	DB *gorm.DB
}

// Get reads the current acceptance state for ownerID.
// Returns ErrUserNotFound when no such user exists.
func (s *AcceptanceService) Get(ctx context.Context, ownerID string) (bool, error) {
	accepting, err := repo.GetAcceptance(ctx, s.DB, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return accepting, nil
}

// Set writes the acceptance state for ownerID and returns the new value.
// The operation is idempotent: writing the current value again succeeds with
// no side effect beyond the stored flag. Concurrent writers race with
// last-write-wins semantics, which is acceptable because nothing derives
// from the ordering of toggle flips.
func (s *AcceptanceService) Set(ctx context.Context, ownerID string, accepting bool) (bool, error) {
	v, err := repo.SetAcceptance(ctx, s.DB, ownerID, accepting)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return v, nil
}

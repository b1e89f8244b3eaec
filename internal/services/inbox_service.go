// Package services – InboxService
//
// This file implements InboxService, the application-level component that
// owns message intake and inbox management. It validates anonymous
// submissions, enforces the owner's acceptance toggle before any store
// mutation, and guards list/delete with ownership checks.
//
// The submission path deliberately retains nothing about the sender:
// anonymity is a product promise, so no sender identity, address, or
// fingerprint ever reaches this layer.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// owner identifiers and outcome attributes where useful.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/candidbox/go-inbox-backend/internal/domain"
	"github.com/candidbox/go-inbox-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// defaultMaxContentRunes bounds submissions when no limit is configured.
const defaultMaxContentRunes = 300

// SubmitResult reports the outcome of an anonymous submission. A refusal
// because the owner is not accepting messages is a normal outcome, carried
// as Accepted=false with no MessageID — distinct from the error cases.
type SubmitResult struct {
	// Accepted is true when a message was created.
	Accepted bool
	// MessageID is the id of the stored message; empty unless Accepted.
	MessageID string
}

// InboxService coordinates message intake and inbox management. It is safe
// for concurrent use; all state lives in the database handle.
type InboxService struct {
	// DB is the database handle used for all inbox operations.
	DB *gorm.DB

	// MaxContentRunes caps submission content length; <= 0 means the
	// package default.
	MaxContentRunes int
}

// Submit processes an anonymous submission addressed to targetUsername.
//
// Validation order (nothing is written until all checks pass):
//  1. targetUsername must resolve to a registered user → ErrUserNotFound.
//  2. content must be non-empty after trimming and within the rune cap
//     → ErrInvalidContent.
//  3. purpose must parse to one of the three categories → ErrInvalidPurpose.
//  4. The owner's acceptance toggle is read; when off, Submit returns
//     {Accepted:false} and creates no record.
//
// The acceptance check and the append are intentionally not atomic: a toggle
// flip racing a submission may land either side of the check, and both
// outcomes are valid. A submission that observed the toggle on is kept even
// if the flag flips off immediately after.
func (s *InboxService) Submit(ctx context.Context, targetUsername, content, purpose string) (SubmitResult, error) {
	tr := otel.Tracer("services/InboxService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(attribute.String("target.username", targetUsername)),
	)
	defer span.End()

	target, err := repo.GetUserByUsername(ctx, s.DB, strings.TrimSpace(targetUsername))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return SubmitResult{}, ErrUserNotFound
		}
		return SubmitResult{}, err
	}

	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > s.maxContentRunes() {
		return SubmitResult{}, ErrInvalidContent
	}

	p, ok := domain.ParsePurpose(purpose)
	if !ok {
		return SubmitResult{}, ErrInvalidPurpose
	}

	if !target.AcceptingMessages {
		span.SetAttributes(attribute.Bool("submit.accepted", false))
		return SubmitResult{Accepted: false}, nil
	}

	m, err := repo.CreateMessage(ctx, s.DB, target.ID, content, p)
	if err != nil {
		return SubmitResult{}, err
	}
	span.SetAttributes(attribute.Bool("submit.accepted", true))
	return SubmitResult{Accepted: true, MessageID: m.ID}, nil
}

// List returns every message owned by ownerID, newest first. The sequence is
// stable across calls while the underlying set is unchanged, so category
// filtering can be re-derived from one fetch (see domain.FilterByPurpose).
// A limit > 0 caps the result; 0 returns the full inbox.
func (s *InboxService) List(ctx context.Context, ownerID string, limit int) ([]domain.Message, error) {
	tr := otel.Tracer("services/InboxService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("owner.id", ownerID),
			attribute.Int("limit", limit),
		),
	)
	defer span.End()

	return repo.ListMessages(ctx, s.DB, ownerID, limit)
}

// Count returns the owner's running message total.
func (s *InboxService) Count(ctx context.Context, ownerID string) (int64, error) {
	return repo.CountMessages(ctx, s.DB, ownerID)
}

// Delete permanently removes the message identified by messageID on behalf
// of ownerID.
//
// Semantics:
//   - ErrMessageNotFound when no such message exists — including a repeat
//     delete of an id that already succeeded. Callers treat this as
//     "already gone".
//   - ErrForbidden when the message exists but belongs to another owner;
//     the row is left untouched.
//
// The existence and ownership checks run in the same transaction as the
// delete so a success never leaves partial state behind.
func (s *InboxService) Delete(ctx context.Context, ownerID, messageID string) error {
	tr := otel.Tracer("services/InboxService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(
			attribute.String("owner.id", ownerID),
			attribute.String("message.id", messageID),
		),
	)
	defer span.End()

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.GetMessage(ctx, tx, messageID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrMessageNotFound
			}
			return err
		}
		if m.UserID != ownerID {
			return ErrForbidden
		}
		if err := repo.DeleteMessage(ctx, tx, ownerID, messageID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				// Row vanished between check and delete.
				return ErrMessageNotFound
			}
			return err
		}
		return nil
	})
}

// maxContentRunes returns the configured content cap or the package default.
func (s *InboxService) maxContentRunes() int {
	if s.MaxContentRunes > 0 {
		return s.MaxContentRunes
	}
	return defaultMaxContentRunes
}

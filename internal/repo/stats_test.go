package repo

import (
	"context"
	"testing"

	"github.com/candidbox/go-inbox-backend/internal/domain"
)

func TestMessagesStats_Empty(t *testing.T) {
	db := newTestDB(t)
	seedOwner(t, db, "u1", "ada")

	count, maxTS, err := MessagesStats(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("MessagesStats: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("empty inbox stats = (%d, %v); want (0, nil)", count, maxTS)
	}
}

func TestMessagesStats_ChangesWithSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedOwner(t, db, "u1", "ada")

	m1, err := CreateMessage(ctx, db, "u1", "one", domain.PurposeFeedback)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	count, maxTS, err := MessagesStats(ctx, db, "u1")
	if err != nil {
		t.Fatalf("MessagesStats: %v", err)
	}
	if count != 1 || maxTS == nil {
		t.Fatalf("stats after insert = (%d, %v)", count, maxTS)
	}

	// Deleting the only message returns stats to the empty shape, so the
	// derived ETag changes exactly when the set changes.
	if err := DeleteMessage(ctx, db, "u1", m1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	count, maxTS, err = MessagesStats(ctx, db, "u1")
	if err != nil {
		t.Fatalf("MessagesStats: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("stats after delete = (%d, %v); want (0, nil)", count, maxTS)
	}
}

func TestMessagesStats_MissingTableSurfacesError(t *testing.T) {
	db := newTestDB(t)
	db.Exec("DROP TABLE messages")

	if _, _, err := MessagesStats(context.Background(), db, "u1"); err == nil {
		t.Fatalf("expected error when messages table is missing")
	}
}

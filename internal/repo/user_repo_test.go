package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/candidbox/go-inbox-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := db.AutoMigrate(&domain.User{}, &domain.Message{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateUser_DefaultsAccepting(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u, err := CreateUser(ctx, db, "u1", "ada")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if !u.AcceptingMessages {
		t.Fatalf("new users must default to accepting messages")
	}

	got, err := GetUserByUsername(ctx, db, "ada")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("resolved wrong user: %q", got.ID)
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, db, "u1", "ada"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := CreateUser(ctx, db, "u2", "ada"); err == nil {
		t.Fatalf("expected unique constraint violation for duplicate username")
	}
}

func TestEnsureUser_ProvisionsOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first, err := EnsureUser(ctx, db, "u1", "ada")
	if err != nil {
		t.Fatalf("first EnsureUser: %v", err)
	}
	if !first.AcceptingMessages {
		t.Fatalf("provisioned user must default to accepting")
	}

	// Flip the toggle, then ensure again: the existing row must be untouched.
	if _, err := SetAcceptance(ctx, db, "u1", false); err != nil {
		t.Fatalf("SetAcceptance: %v", err)
	}
	again, err := EnsureUser(ctx, db, "u1", "ada")
	if err != nil {
		t.Fatalf("second EnsureUser: %v", err)
	}
	if again.AcceptingMessages {
		t.Fatalf("EnsureUser must not reset the acceptance toggle")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db := newTestDB(t)
	if _, err := GetUser(context.Background(), db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := GetUserByUsername(context.Background(), db, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAcceptance_GetSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, db, "u1", "ada"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	on, err := GetAcceptance(ctx, db, "u1")
	if err != nil || !on {
		t.Fatalf("GetAcceptance = (%v, %v); want (true, nil)", on, err)
	}

	off, err := SetAcceptance(ctx, db, "u1", false)
	if err != nil || off {
		t.Fatalf("SetAcceptance(false) = (%v, %v); want (false, nil)", off, err)
	}
	on, err = GetAcceptance(ctx, db, "u1")
	if err != nil || on {
		t.Fatalf("toggle did not persist: (%v, %v)", on, err)
	}
}

// Setting the same value twice is a successful no-op both times.
func TestSetAcceptance_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, db, "u1", "ada"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for i := 0; i < 2; i++ {
		v, err := SetAcceptance(ctx, db, "u1", true)
		if err != nil || !v {
			t.Fatalf("call %d: SetAcceptance(true) = (%v, %v); want (true, nil)", i+1, v, err)
		}
	}
	if on, _ := GetAcceptance(ctx, db, "u1"); !on {
		t.Fatalf("flag lost after idempotent writes")
	}
}

func TestSetAcceptance_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	if _, err := SetAcceptance(context.Background(), db, "ghost", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := GetAcceptance(context.Background(), db, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

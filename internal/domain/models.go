// Package domain defines the persistence models for inbox owners and their
// anonymous messages. These types are mapped with GORM and form the core
// data layer of the feedback inbox application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// User represents an inbox owner. Identity (authentication, session issuance)
// lives in an external provider; this row mirrors the provider's stable id
// and username and carries the per-owner acceptance toggle.
//
// Fields:
//   - ID: stable opaque identifier assigned by the identity provider (char(36)).
//   - Username: unique handle used to build the public submission link.
//   - AcceptingMessages: gates whether new anonymous submissions are stored.
//     Defaults to true at provisioning; flipping it never touches existing
//     messages.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type User struct {
	ID                string         `json:"id"                   gorm:"type:char(36);primaryKey"`
	Username          string         `json:"username"             gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	AcceptingMessages bool           `json:"is_accepting_message" gorm:"not null;default:true"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-"                    gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Message represents a single anonymous submission addressed to an inbox
// owner. A message has exactly one owner, is never reassigned, and is never
// mutated after creation; the only lifecycle transitions are create and
// delete. Deletion is a hard delete: the row (content included) leaves the
// table for good, there is no soft-delete marker and no tombstone. No
// sender identity is modeled or stored.
//
// Fields:
//   - ID: UUID primary key (char(36)); unique across the whole store.
//   - UserID: foreign key to the owning user (indexed with CreatedAt).
//   - Content: full text of the submission; non-empty, bounded at the
//     service layer.
//   - Purpose: fixed three-way category, assigned at submission and
//     immutable thereafter (enforced by DB constraint).
//   - CreatedAt: submission time; used only for newest-first ordering.
//   - User: FK association, ensures cascade delete if the owner is removed.
type Message struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index:idx_owner_msgs,priority:1"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	Purpose   Purpose   `json:"purpose"    gorm:"type:varchar(16);not null;check:purpose IN ('feedback','suggestion','appreciation')"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_owner_msgs,priority:2"`
	UpdatedAt time.Time `json:"updated_at"`

	// User is the inbox owner. Messages are cascade-deleted if the owner
	// account is removed.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

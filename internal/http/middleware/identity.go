// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the identity boundary for owner-facing routes. The
// service itself never authenticates anyone: an upstream identity provider
// (the dashboard's session gateway) terminates the session and forwards the
// resolved identity as trusted headers:
//
//	X-User-ID:  stable owner identifier
//	X-Username: the owner's public inbox handle
//
// Identity() validates that both headers are present, provisions the owner
// row on first sight (so a freshly signed-up user immediately has a working
// inbox with acceptance on), and stores the identity in the Gin context for
// handlers and downstream middleware.
//
// Anonymous routes (the public submission endpoint) must NOT be behind this
// middleware; submitters carry no identity at all.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/candidbox/go-inbox-backend/internal/repo"
)

const (
	// ctxKeyUserID is the Gin context key holding the authenticated owner ID.
	ctxKeyUserID = "userID"
	// ctxKeyUsername is the Gin context key holding the owner's handle.
	ctxKeyUsername = "username"

	// userIDHeader carries the owner ID forwarded by the identity provider.
	userIDHeader = "X-User-ID"
	// usernameHeader carries the owner handle forwarded by the identity provider.
	usernameHeader = "X-Username"
)

// Identity returns a Gin middleware that enforces the presence of the
// forwarded identity headers and provisions the owner on first request.
//
// Behavior:
//   - Missing or blank X-User-ID or X-Username aborts with 401 and the
//     standard error envelope.
//   - On success, the owner row is ensured to exist (idempotent; an existing
//     row's acceptance toggle is never touched) and the identity is stored
//     under the "userID" / "username" context keys.
//   - Provisioning failures surface as 500; the request never proceeds with
//     an unverified identity.
//
// The headers are trusted as-is. Deployments must ensure the identity
// provider strips client-supplied X-User-ID / X-Username before forwarding.
func Identity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(userIDHeader))
		uname := strings.TrimSpace(c.GetHeader(usernameHeader))
		if uid == "" || uname == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "unauthorized",
				"message":    "missing identity",
			})
			return
		}

		if _, err := repo.EnsureUser(c.Request.Context(), db, uid, uname); err != nil {
			LoggerFrom(c).Error().
				Err(err).
				Str("user_id", uid).
				Msg("owner provisioning failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "internal_error",
				"message":    "internal server error",
			})
			return
		}

		c.Set(ctxKeyUserID, uid)
		c.Set(ctxKeyUsername, uname)
		c.Next()
	}
}

// OwnerID returns the authenticated owner ID attached by Identity(), or the
// empty string on routes outside the identity boundary.
func OwnerID(c *gin.Context) string {
	v, _ := c.Get(ctxKeyUserID)
	return asString(v)
}

// OwnerUsername returns the authenticated owner handle attached by
// Identity(), or the empty string outside the identity boundary.
func OwnerUsername(c *gin.Context) string {
	v, _ := c.Get(ctxKeyUsername)
	return asString(v)
}

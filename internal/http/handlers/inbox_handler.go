// Inbox HTTP handlers.
//
// This file exposes the owner-facing REST endpoints for inbox management:
//   - GET    /messages        (list all messages, newest first, ETag support)
//   - DELETE /messages/{id}   (permanently delete one message)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses (including conditional
// responses). Category filtering is a pure projection of the fetched
// sequence (domain.FilterByPurpose); the optional ?purpose= parameter is a
// convenience that applies the same projection server-side — clients holding
// a fetched inbox never need a round trip to re-filter.
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/candidbox/go-inbox-backend/internal/domain"
	"github.com/candidbox/go-inbox-backend/internal/http/middleware"
	"github.com/candidbox/go-inbox-backend/internal/repo"
	"github.com/candidbox/go-inbox-backend/internal/services"
	"github.com/candidbox/go-inbox-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// InboxService defines message intake and inbox management operations
// consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type InboxService interface {
	// Submit processes an anonymous submission addressed to a username.
	Submit(ctx context.Context, targetUsername, content, purpose string) (services.SubmitResult, error)
	// List returns all messages owned by ownerID, newest first.
	List(ctx context.Context, ownerID string, limit int) ([]domain.Message, error)
	// Count returns the owner's running message total.
	Count(ctx context.Context, ownerID string) (int64, error)
	// Delete permanently removes a message owned by ownerID.
	Delete(ctx context.Context, ownerID, messageID string) error
}

// AcceptanceService defines read/write access to the per-owner acceptance
// toggle.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AcceptanceService interface {
	// Get reads the current acceptance state for ownerID.
	Get(ctx context.Context, ownerID string) (bool, error)
	// Set writes the acceptance state and returns the new value.
	Set(ctx context.Context, ownerID string, accepting bool) (bool, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for submissions, the inbox, and the
// acceptance toggle. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	inboxSvc InboxService
	accSvc   AcceptanceService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(inboxSvc InboxService, accSvc AcceptanceService) *Handlers {
	return &Handlers{inboxSvc: inboxSvc, accSvc: accSvc}
}

//
// DTOs
//

// ListMessagesResponse contains the owner's full inbox sequence plus the
// running total. Count reflects the unfiltered inbox size even when a
// purpose projection was applied.
type ListMessagesResponse struct {
	Messages []domain.Message `json:"messages"`
	Count    int64            `json:"count"`
}

//
// Handlers
//

// ListMessages godoc
// @ID          listMessages
// @Summary     List received messages
// @Description Returns the owner's messages, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Inbox
// @Produce     json
//
// @Param       X-User-ID      header  string  true  "Owner ID (from the identity provider session)"  example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       purpose        query   string  false "Category projection"  Enums(all, feedback, suggestion, appreciation)
// @Param       limit          query   int     false "Cap the number of returned messages"  minimum(1)
//
// @Success     200  {object} handlers.ListMessagesResponse
// @Header      200  {string} ETag "Weak ETag for the current inbox state"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /messages [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()
	uid := middleware.OwnerID(c)

	filter, okFilter := domain.ParsePurposeFilter(c.Query("purpose"))
	if !okFilter {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "purpose must be one of: all, feedback, suggestion, appreciation")
		return
	}
	limit := utils.AtoiDefault(c.Query("limit"), 0)
	if limit < 0 {
		limit = 0
	}

	// ETag pre-check (best effort). Messages are immutable, so (count, max
	// updated_at) changes exactly when the inbox set changes. The purpose
	// projection and limit are folded in so differently-shaped responses
	// never share a validator.
	var db *gorm.DB
	if svc, okSvc := h.inboxSvc.(*services.InboxService); okSvc {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.MessagesStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"inbox:%s:%d:%d:%s:%d"`, uid, count, ts, filter, limit)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	msgs, err := h.inboxSvc.List(ctx, uid, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	total, err := h.inboxSvc.Count(ctx, uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	ok(c, http.StatusOK, ListMessagesResponse{
		Messages: domain.FilterByPurpose(msgs, filter),
		Count:    total,
	})
}

// DeleteMessage godoc
// @ID          deleteMessage
// @Summary     Delete a received message
// @Description Permanently removes one message from the owner's inbox. Deleting an already-deleted id returns 404; clients treat that as "already gone".
// @Tags        Inbox
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "Owner ID (from the identity provider session)"  example(user123)
// @Param       id         path    string  true  "Message ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Message belongs to another owner"
// @Failure     404  {object} handlers.ErrorResponse "Message not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /messages/{id} [delete]
func (h *Handlers) DeleteMessage(c *gin.Context) {
	messageID := c.Param("id")
	if _, err := uuid.Parse(messageID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message id must be a UUID")
		return
	}

	err := h.inboxSvc.Delete(c.Request.Context(), middleware.OwnerID(c), messageID)
	if err != nil {
		switch err {
		case services.ErrMessageNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
		case services.ErrForbidden:
			fail(c, http.StatusForbidden, ErrCodeForbidden, "message belongs to another user")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		}
		return
	}

	noContent(c)
}

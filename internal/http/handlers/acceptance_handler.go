// Acceptance toggle HTTP handlers.
//
// This file exposes the owner-facing endpoints around the acceptance toggle:
//   - GET  /settings/accept-messages  (read current state)
//   - POST /settings/accept-messages  (write state)
//
// Read and write are two independent, idempotent operations. The dashboard
// is expected to flip its checkbox optimistically and roll back on failure;
// nothing here carries shared mutable form state.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/candidbox/go-inbox-backend/internal/http/middleware"
	"github.com/candidbox/go-inbox-backend/internal/services"
)

// AcceptanceResponse reports the current acceptance state.
type AcceptanceResponse struct {
	IsAcceptingMessage bool `json:"isAcceptingMessage"`
}

// SetAcceptanceRequest is the JSON payload for writing the toggle.
//
// The pointer distinguishes an explicit false from an absent field, so
// {"acceptMessages": false} binds correctly.
type SetAcceptanceRequest struct {
	AcceptMessages *bool `json:"acceptMessages" binding:"required" example:"true"`
}

// SetAcceptanceResponse confirms the stored state after a write.
type SetAcceptanceResponse struct {
	Message            string `json:"message"`
	IsAcceptingMessage bool   `json:"isAcceptingMessage"`
}

// GetAcceptance godoc
// @ID          getAcceptance
// @Summary     Read the acceptance toggle
// @Description Returns whether the owner currently accepts new anonymous submissions.
// @Tags        Settings
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "Owner ID (from the identity provider session)"  example(user123)
//
// @Success     200  {object} handlers.AcceptanceResponse
// @Failure     404  {object} handlers.ErrorResponse "Owner not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /settings/accept-messages [get]
func (h *Handlers) GetAcceptance(c *gin.Context) {
	accepting, err := h.accSvc.Get(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeToggleFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, AcceptanceResponse{IsAcceptingMessage: accepting})
}

// SetAcceptance godoc
// @ID          setAcceptance
// @Summary     Write the acceptance toggle
// @Description Sets whether the owner accepts new anonymous submissions. Idempotent; existing messages are never affected.
// @Tags        Settings
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "Owner ID (from the identity provider session)"  example(user123)
// @Param       body       body    handlers.SetAcceptanceRequest  true  "New toggle state"
//
// @Success     200  {object} handlers.SetAcceptanceResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing acceptMessages field"
// @Failure     404  {object} handlers.ErrorResponse "Owner not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /settings/accept-messages [post]
func (h *Handlers) SetAcceptance(c *gin.Context) {
	var req SetAcceptanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AcceptMessages == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "acceptMessages required")
		return
	}

	v, err := h.accSvc.Set(c.Request.Context(), middleware.OwnerID(c), *req.AcceptMessages)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeToggleFailed, err.Error())
		}
		return
	}

	msg := "you are now accepting messages"
	if !v {
		msg = "you are no longer accepting messages"
	}
	ok(c, http.StatusOK, SetAcceptanceResponse{Message: msg, IsAcceptingMessage: v})
}

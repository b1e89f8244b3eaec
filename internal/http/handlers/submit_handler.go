// Submission HTTP handler.
//
// This file exposes the single anonymous endpoint of the API:
//   - POST /u/{username}/messages  (submit a message to an owner's public link)
//
// The submitter is never authenticated and nothing about them is retained —
// anonymity is the product's core promise. Abuse mitigation (rate limiting)
// is layered in front of this handler by the router, not inside it.
//
// A target who is not currently accepting messages yields HTTP 200 with
// success=false: a soft outcome the submission page can show as "this user
// is not receiving messages right now", distinct from the 4xx validation
// responses.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/candidbox/go-inbox-backend/internal/services"
)

// submissionsTotal counts submission outcomes by kind. "accepted" and
// "rejected" are business outcomes; "invalid" covers validation failures.
var submissionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inbox_submissions_total",
		Help: "Total anonymous submissions by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(submissionsTotal)
}

// SubmitMessageRequest is the JSON payload for an anonymous submission.
type SubmitMessageRequest struct {
	// Content is the message text. It must be non-empty; the maximum
	// length is enforced by the service.
	Content string `json:"content" binding:"required,min=1" example:"Loved the last episode, the pacing was perfect."`
	// Purpose categorizes the message: feedback, suggestion, or appreciation.
	Purpose string `json:"purpose" binding:"required" example:"appreciation"`
}

// SubmitMessageResponse reports the outcome of a submission.
//
// Success mirrors SubmitResult.Accepted: false with HTTP 200 means the
// target is not currently accepting messages (no record was created).
type SubmitMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// ID is the stored message id; present only when Success is true.
	ID string `json:"id,omitempty"`
}

// SubmitMessage godoc
// @ID          submitMessage
// @Summary     Submit an anonymous message
// @Description Stores a message in the target user's inbox if they are accepting messages. No sender identity is recorded.
// @Tags        Submission
// @Accept      json
// @Produce     json
//
// @Param       username  path  string  true  "Target username from the public link"  example(ada)
// @Param       body      body  handlers.SubmitMessageRequest  true  "Submission payload"
//
// @Success     200  {object} handlers.SubmitMessageResponse "Accepted, or target not accepting (success=false)"
// @Failure     400  {object} handlers.ErrorResponse "Invalid content or purpose"
// @Failure     404  {object} handlers.ErrorResponse "Username does not exist"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /u/{username}/messages [post]
func (h *Handlers) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content and purpose required")
		return
	}

	res, err := h.inboxSvc.Submit(c.Request.Context(), c.Param("username"), req.Content, req.Purpose)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		case services.ErrInvalidContent:
			submissionsTotal.WithLabelValues("invalid").Inc()
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content must be non-empty and within the length limit")
		case services.ErrInvalidPurpose:
			submissionsTotal.WithLabelValues("invalid").Inc()
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "purpose must be feedback, suggestion, or appreciation")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, err.Error())
		}
		return
	}

	if !res.Accepted {
		submissionsTotal.WithLabelValues("rejected").Inc()
		ok(c, http.StatusOK, SubmitMessageResponse{
			Success: false,
			Message: fmt.Sprintf("%s is not accepting messages right now", c.Param("username")),
		})
		return
	}

	submissionsTotal.WithLabelValues("accepted").Inc()
	ok(c, http.StatusOK, SubmitMessageResponse{
		Success: true,
		Message: "message sent",
		ID:      res.MessageID,
	})
}

package apihandlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"rulebot/internal/app"
	"rulebot/internal/models"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// ChatHandler classifies the message in a JSON body and returns the reply
// text alongside the structured response.
func (h *APIHandler) ChatHandler(c *gin.Context) {
	message, err := parseChatRequest(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			PayloadTooLarge(c, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		default:
			BadRequest(c, "Invalid request body: "+err.Error())
		}
		return
	}

	reply, err := h.App.ChatService.Reply(c.Request.Context(), message)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyMessage):
			BadRequest(c, "message is required")
		case errors.Is(err, models.ErrValidation):
			BadRequest(c, err.Error())
		default:
			log.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error("ChatHandler: reply failed")
			Internal(c, "ChatHandler: reply failed")
		}
		return
	}

	c.JSON(http.StatusOK, reply)
}

// HealthHandler reports that the server is up.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// RulesHandler lists the rule catalog in evaluation order.
func (h *APIHandler) RulesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rules": h.App.ChatService.ListRules()})
}

// parseChatRequest extracts the message field. A missing body, missing field
// or falsy value yields an empty message; other non-string values are
// converted to text.
func parseChatRequest(c *gin.Context) (string, error) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}

	return messageText(req.Message)
}

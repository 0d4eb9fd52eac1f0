package models

import (
	"encoding/json"

	"rulebot/internal/classifier"
)

// ChatRequest is the body of POST /api/chat. Message is kept raw so the
// handler can tell a missing field from a non-string one.
type ChatRequest struct {
	Message json.RawMessage `json:"message"`
}

// ChatReply is a classification result with its flat text rendering.
// The embedded Response is flattened into the same JSON object.
type ChatReply struct {
	Reply string `json:"reply"`
	classifier.Response
	Category string `json:"-"`
	Keyword  string `json:"-"`
}

// RuleSummary describes one catalog entry for listing.
type RuleSummary struct {
	Order    int      `json:"order"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Title    string   `json:"title"`
	Steps    int      `json:"steps"`
}

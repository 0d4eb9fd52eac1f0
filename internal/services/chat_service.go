package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"rulebot/internal/classifier"
	"rulebot/internal/models"
	"rulebot/internal/util"
)

type ChatService struct {
	classifier Classifier
}

func NewChatService(c Classifier) *ChatService {
	return &ChatService{classifier: c}
}

// Reply classifies message and renders the flat reply text. A message that is
// empty after normalization returns models.ErrEmptyMessage.
func (s *ChatService) Reply(ctx context.Context, message string) (models.ChatReply, error) {
	cleaned := util.CleanMessage(message)
	if classifier.Normalize(cleaned) == "" {
		return models.ChatReply{}, models.ErrEmptyMessage
	}

	m := s.classifier.Match(cleaned)

	log.WithFields(log.Fields{
		"request_id": RequestIDFromContext(ctx),
		"category":   m.Rule,
		"keyword":    m.Keyword,
		"length":     len(cleaned),
	}).Debug("classified message")

	return models.ChatReply{
		Reply:    m.Response.Text(),
		Response: m.Response,
		Category: m.Rule,
		Keyword:  m.Keyword,
	}, nil
}

// ListRules summarises the catalog in evaluation order.
func (s *ChatService) ListRules() []models.RuleSummary {
	rules := s.classifier.Rules()
	out := make([]models.RuleSummary, 0, len(rules))
	for i, r := range rules {
		out = append(out, models.RuleSummary{
			Order:    i + 1,
			Name:     r.Name,
			Keywords: r.Keywords,
			Title:    r.Response.Title,
			Steps:    len(r.Response.Steps),
		})
	}
	return out
}

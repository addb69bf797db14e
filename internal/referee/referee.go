// Package referee answers rule questions for the portal's rule assistant.
package referee

import (
	"context"
	"errors"
	"strings"

	"github.com/festy23/tournament_portal/internal/model"
)

// OfflineAnswer is returned when no assistant is configured.
const OfflineAnswer = "AI Referee is offline. No external rule assistant is configured."

// ErrEmptyQuestion is returned for a blank question.
var ErrEmptyQuestion = errors.New("question is required")

// Assistant answers a free-text rule question about a sport.
type Assistant interface {
	AskReferee(ctx context.Context, question string, sport model.Sport) (string, error)
}

// Offline is the assistant used when no external assistant is configured.
// It answers every question with OfflineAnswer, followed by the published
// rules for the sport when they are known.
type Offline struct {
	rules func(ctx context.Context) model.Rules
}

// NewOffline creates an Offline assistant. rules may be nil.
func NewOffline(rules func(ctx context.Context) model.Rules) *Offline {
	return &Offline{rules: rules}
}

// AskReferee implements Assistant.
func (o *Offline) AskReferee(ctx context.Context, question string, sport model.Sport) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}
	if o.rules == nil {
		return OfflineAnswer, nil
	}

	list := o.rules(ctx).For(sport)
	if len(list) == 0 {
		return OfflineAnswer, nil
	}

	var b strings.Builder
	b.WriteString(OfflineAnswer)
	b.WriteString("\n\n")
	b.WriteString(string(sport.Normalize()))
	b.WriteString(" rules:")
	for _, rule := range list {
		b.WriteString("\n- ")
		b.WriteString(rule)
	}
	return b.String(), nil
}

// Package model provides request and response types for the public portal.
package model

import (
	"errors"
	"strings"

	"github.com/festy23/tournament_portal/internal/model"
)

// ErrInvalidStatus is returned for an unknown match status filter.
var ErrInvalidStatus = errors.New("status must be one of: upcoming, live, completed")

// FeaturedCount is how many matches the home page features.
const FeaturedCount = 2

// Home is the landing page payload.
type Home struct {
	Featured  []model.Match    `json:"featured"`
	Teams     []model.Team     `json:"teams"`
	Matches   []model.Match    `json:"matches"`
	Players   []model.Player   `json:"players"`
	Standings []model.Standing `json:"standings"`
	Blogs     []model.BlogPost `json:"blogs"`
}

// MatchFilter narrows the match schedule. Zero fields match everything.
type MatchFilter struct {
	Status model.MatchStatus
	Sport  model.Sport
}

// ParseMatchFilter builds a filter from query values.
func ParseMatchFilter(status, sport string) (MatchFilter, error) {
	var f MatchFilter
	if status = strings.TrimSpace(status); status != "" {
		switch strings.ToLower(status) {
		case "upcoming", "live", "completed", "finished":
			f.Status = model.ParseMatchStatus(status)
		default:
			return MatchFilter{}, ErrInvalidStatus
		}
	}
	f.Sport = model.Sport(sport).Normalize()
	return f, nil
}

// Match reports whether m passes the filter.
func (f MatchFilter) Match(m model.Match) bool {
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if f.Sport != "" && !strings.EqualFold(string(m.Sport.Normalize()), string(f.Sport)) {
		return false
	}
	return true
}

// CommentRequest is the body of a new comment.
type CommentRequest struct {
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
}

// RefereeRequest is a question for the rule assistant.
type RefereeRequest struct {
	Question string      `json:"question"`
	Sport    model.Sport `json:"sport"`
}

// RefereeResponse carries the assistant's answer.
type RefereeResponse struct {
	Answer string `json:"answer"`
}

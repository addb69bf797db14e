// Package service provides the public portal's read workflows.
package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/festy23/tournament_portal/internal/admin"
	"github.com/festy23/tournament_portal/internal/model"
	portalModel "github.com/festy23/tournament_portal/internal/portal/model"
	"github.com/festy23/tournament_portal/internal/referee"
)

// Reader is the part of the backend adapter the portal reads from.
type Reader interface {
	GetTeams(ctx context.Context) []model.Team
	GetTournaments(ctx context.Context) []model.Tournament
	GetMatches(ctx context.Context) []model.Match
	GetPlayers(ctx context.Context) []model.Player
	GetStandings(ctx context.Context) []model.Standing
	GetBlogPosts(ctx context.Context) []model.BlogPost
	GetComments(ctx context.Context, blogID string) []model.Comment
	GetRules(ctx context.Context) model.Rules
}

// Commenter posts reader comments.
type Commenter interface {
	AddComment(ctx context.Context, req *admin.NewComment) (admin.Outcome, error)
}

// Service defines the portal's operations.
type Service interface {
	Home(ctx context.Context) *portalModel.Home
	Teams(ctx context.Context) []model.Team
	Tournaments(ctx context.Context) []model.Tournament
	Matches(ctx context.Context, filter portalModel.MatchFilter) []model.Match
	Players(ctx context.Context, teamID string) []model.Player
	Standings(ctx context.Context, category string) []model.Standing
	Blogs(ctx context.Context) []model.BlogPost
	Comments(ctx context.Context, blogID string) []model.Comment
	AddComment(ctx context.Context, blogID string, req *portalModel.CommentRequest) (admin.Outcome, error)
	Rules(ctx context.Context) model.Rules
	AskReferee(ctx context.Context, req *portalModel.RefereeRequest) (*portalModel.RefereeResponse, error)
}

type service struct {
	repo      Reader
	commenter Commenter
	referee   referee.Assistant
	logger    *zap.SugaredLogger
}

// New creates a new portal service.
func New(repo Reader, commenter Commenter, assistant referee.Assistant, logger *zap.SugaredLogger) Service {
	return &service{
		repo:      repo,
		commenter: commenter,
		referee:   assistant,
		logger:    logger,
	}
}

// Home loads the landing page collections concurrently. Reads never fail,
// so an unreachable backend yields empty collections.
func (s *service) Home(ctx context.Context) *portalModel.Home {
	var home portalModel.Home
	var g errgroup.Group

	g.Go(func() error {
		home.Teams = s.repo.GetTeams(ctx)
		return nil
	})
	g.Go(func() error {
		home.Matches = s.repo.GetMatches(ctx)
		return nil
	})
	g.Go(func() error {
		home.Players = s.repo.GetPlayers(ctx)
		return nil
	})
	g.Go(func() error {
		home.Standings = rank(s.repo.GetStandings(ctx))
		return nil
	})
	g.Go(func() error {
		home.Blogs = s.repo.GetBlogPosts(ctx)
		return nil
	})

	_ = g.Wait()
	home.Featured = featured(home.Matches, portalModel.FeaturedCount)
	return &home
}

func (s *service) Teams(ctx context.Context) []model.Team {
	return s.repo.GetTeams(ctx)
}

func (s *service) Tournaments(ctx context.Context) []model.Tournament {
	return s.repo.GetTournaments(ctx)
}

func (s *service) Matches(ctx context.Context, filter portalModel.MatchFilter) []model.Match {
	all := s.repo.GetMatches(ctx)
	out := make([]model.Match, 0, len(all))
	for _, m := range all {
		if filter.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// Players lists players, optionally only those of one team.
func (s *service) Players(ctx context.Context, teamID string) []model.Player {
	all := s.repo.GetPlayers(ctx)
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return all
	}
	out := make([]model.Player, 0, len(all))
	for _, p := range all {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// Standings returns the table ranked by points then goal difference,
// optionally limited to one category.
func (s *service) Standings(ctx context.Context, category string) []model.Standing {
	all := s.repo.GetStandings(ctx)
	category = strings.TrimSpace(category)
	if category != "" {
		out := make([]model.Standing, 0, len(all))
		for _, st := range all {
			if strings.EqualFold(strings.TrimSpace(st.Category), category) {
				out = append(out, st)
			}
		}
		all = out
	}
	return rank(all)
}

func (s *service) Blogs(ctx context.Context) []model.BlogPost {
	return s.repo.GetBlogPosts(ctx)
}

func (s *service) Comments(ctx context.Context, blogID string) []model.Comment {
	return s.repo.GetComments(ctx, strings.TrimSpace(blogID))
}

func (s *service) AddComment(ctx context.Context, blogID string, req *portalModel.CommentRequest) (admin.Outcome, error) {
	if req == nil {
		req = &portalModel.CommentRequest{}
	}
	return s.commenter.AddComment(ctx, &admin.NewComment{
		BlogID:     blogID,
		AuthorName: req.AuthorName,
		Text:       req.Text,
	})
}

func (s *service) Rules(ctx context.Context) model.Rules {
	return s.repo.GetRules(ctx)
}

func (s *service) AskReferee(ctx context.Context, req *portalModel.RefereeRequest) (*portalModel.RefereeResponse, error) {
	sport := req.Sport.Normalize()
	if sport == "" {
		sport = model.SportFootball
	}
	answer, err := s.referee.AskReferee(ctx, req.Question, sport)
	if err != nil {
		return nil, err
	}
	return &portalModel.RefereeResponse{Answer: answer}, nil
}

// rank orders standings by points, then goal difference, then goals scored.
func rank(in []model.Standing) []model.Standing {
	out := append([]model.Standing(nil), in...)
	if out == nil {
		out = []model.Standing{}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})
	return out
}

// featured picks live matches first, then the nearest upcoming ones. With
// neither it falls back to the head of the schedule.
func featured(matches []model.Match, n int) []model.Match {
	out := make([]model.Match, 0, n)
	for _, m := range matches {
		if len(out) == n {
			return out
		}
		if m.Status == model.StatusLive {
			out = append(out, m)
		}
	}

	upcoming := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == model.StatusUpcoming {
			upcoming = append(upcoming, m)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i].Date, upcoming[j].Date
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.Before(b)
	})
	for _, m := range upcoming {
		if len(out) == n {
			return out
		}
		out = append(out, m)
	}

	if len(out) == 0 {
		for _, m := range matches {
			if len(out) == n {
				break
			}
			out = append(out, m)
		}
	}
	return out
}

package service

import (
	"context"
	"sort"

	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
	"github.com/festy23/tournament_portal/internal/sheet/repository"
)

// Points per result.
const (
	pointsWin  = 3
	pointsDraw = 1
)

type standingKey struct {
	teamID   string
	category string
}

// ComputeStandings aggregates played matches into one row per team and
// category. A match without a category name is filed under its sport.
func ComputeStandings(matches []sheetModel.Match) []sheetModel.Standing {
	rows := map[standingKey]*sheetModel.Standing{}
	row := func(teamID, teamName, category string) *sheetModel.Standing {
		k := standingKey{teamID: teamID, category: category}
		st, ok := rows[k]
		if !ok {
			st = &sheetModel.Standing{TeamID: teamID, Category: category}
			rows[k] = st
		}
		if teamName != "" {
			st.TeamName = teamName
		}
		return st
	}

	for _, m := range matches {
		if !m.Played() {
			continue
		}
		category := m.CategoryName
		if category == "" {
			category = m.Sport
		}
		a := row(m.TeamAID, m.TeamAName, category)
		b := row(m.TeamBID, m.TeamBName, category)
		record(a, *m.TeamAScore, *m.TeamBScore)
		record(b, *m.TeamBScore, *m.TeamAScore)
	}

	out := make([]sheetModel.Standing, 0, len(rows))
	for _, st := range rows {
		st.GoalDifference = st.GoalsFor - st.GoalsAgainst
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].GoalDifference != out[j].GoalDifference {
			return out[i].GoalDifference > out[j].GoalDifference
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}

func record(st *sheetModel.Standing, scored, conceded int) {
	st.Played++
	st.GoalsFor += scored
	st.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		st.Won++
		st.Points += pointsWin
	case scored == conceded:
		st.Drawn++
		st.Points += pointsDraw
	default:
		st.Lost++
	}
}

// recomputeStandings rebuilds the whole table from stored matches. Rows
// removed with deleteStanding come back on the next rebuild if their team
// still has played matches.
func (s *Service) recomputeStandings(ctx context.Context, repo repository.Repository) error {
	var matches []sheetModel.Match
	if err := repo.List(ctx, &matches, ""); err != nil {
		return err
	}
	rows := ComputeStandings(matches)
	now := s.clock.Now()
	for i := range rows {
		rows[i].LastUpdated = now
	}
	return repo.ReplaceStandings(ctx, rows)
}

func (s *Service) getStandings(ctx context.Context, repo repository.Repository, _ sheetModel.Params) (sheetModel.Response, error) {
	out := []sheetModel.Standing{}
	if err := repo.List(ctx, &out, "category ASC, points DESC, goal_difference DESC, goals_for DESC"); err != nil {
		return nil, err
	}
	return sheetModel.OK("standings", out), nil
}

func (s *Service) deleteStanding(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	teamID, category := p.Str("teamId"), p.Str("category")
	if teamID == "" || category == "" {
		return nil, sheetModel.ErrStandingIncomplete
	}
	if err := repo.DeleteStanding(ctx, teamID, category); err != nil {
		return nil, wrapNotFound(err, "standing", teamID+"/"+category)
	}
	return sheetModel.OK("message", "Standing deleted"), nil
}

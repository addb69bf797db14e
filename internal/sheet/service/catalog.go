package service

import (
	"context"
	"errors"
	"fmt"

	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
	"github.com/festy23/tournament_portal/internal/sheet/repository"
)

// wrapNotFound names the missing record in a not-found error.
func wrapNotFound(err error, kind, id string) error {
	if errors.Is(err, sheetModel.ErrNotFound) {
		return fmt.Errorf("%s %q: %w", kind, id, err)
	}
	return err
}

func (s *Service) getTournaments(ctx context.Context, repo repository.Repository, _ sheetModel.Params) (sheetModel.Response, error) {
	out := []sheetModel.Tournament{}
	if err := repo.List(ctx, &out, "name ASC"); err != nil {
		return nil, err
	}
	return sheetModel.OK("tournaments", out), nil
}

func applyTournament(t *sheetModel.Tournament, p sheetModel.Params) {
	t.Name = p.Str("tournamentName")
	t.Sport = p.Str("sport")
	t.CategoryID = p.Str("categoryId")
	t.CategoryName = p.Str("categoryName")
}

func (s *Service) createTournament(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	t := sheetModel.Tournament{ID: s.newID(sheetModel.PrefixTournament)}
	applyTournament(&t, p)
	if t.Name == "" {
		return nil, sheetModel.ErrNameRequired
	}
	if err := repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return sheetModel.OK("tournamentId", t.ID, "message", "Tournament created"), nil
}

func (s *Service) updateTournament(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("tournamentId")
	var t sheetModel.Tournament
	if err := repo.Find(ctx, &t, id); err != nil {
		return nil, wrapNotFound(err, "tournament", id)
	}
	applyTournament(&t, p)
	if t.Name == "" {
		return nil, sheetModel.ErrNameRequired
	}
	if err := repo.Save(ctx, &t); err != nil {
		return nil, err
	}
	return sheetModel.OK("message", "Tournament updated"), nil
}

func (s *Service) deleteTournament(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("tournamentId")
	if err := repo.Delete(ctx, &sheetModel.Tournament{}, id); err != nil {
		return nil, wrapNotFound(err, "tournament", id)
	}
	return sheetModel.OK("message", "Tournament deleted"), nil
}

func (s *Service) getTeams(ctx context.Context, repo repository.Repository, _ sheetModel.Params) (sheetModel.Response, error) {
	out := []sheetModel.Team{}
	if err := repo.List(ctx, &out, "name ASC"); err != nil {
		return nil, err
	}
	return sheetModel.OK("teams", out), nil
}

func applyTeam(t *sheetModel.Team, p sheetModel.Params) {
	t.Name = p.Str("teamName")
	t.TournamentID = p.Str("tournamentId")
	t.Sport = p.Str("sport")
	t.CategoryID = p.Str("categoryId")
	t.CategoryName = p.Str("categoryName")
}

func (s *Service) createTeam(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	t := sheetModel.Team{ID: s.newID(sheetModel.PrefixTeam)}
	applyTeam(&t, p)
	if t.Name == "" {
		return nil, sheetModel.ErrNameRequired
	}
	if err := repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return sheetModel.OK("teamId", t.ID, "message", "Team created"), nil
}

func (s *Service) updateTeam(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("teamId")
	var t sheetModel.Team
	if err := repo.Find(ctx, &t, id); err != nil {
		return nil, wrapNotFound(err, "team", id)
	}
	applyTeam(&t, p)
	if t.Name == "" {
		return nil, sheetModel.ErrNameRequired
	}
	if err := repo.Save(ctx, &t); err != nil {
		return nil, err
	}
	return sheetModel.OK("message", "Team updated"), nil
}

func (s *Service) deleteTeam(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("teamId")
	if err := repo.Delete(ctx, &sheetModel.Team{}, id); err != nil {
		return nil, wrapNotFound(err, "team", id)
	}
	return sheetModel.OK("message", "Team deleted"), nil
}

func (s *Service) getPlayers(ctx context.Context, repo repository.Repository, _ sheetModel.Params) (sheetModel.Response, error) {
	out := []sheetModel.Player{}
	if err := repo.List(ctx, &out, "team_id ASC, jersey_no ASC, name ASC"); err != nil {
		return nil, err
	}
	return sheetModel.OK("players", out), nil
}

func applyPlayer(pl *sheetModel.Player, p sheetModel.Params) {
	pl.Name = p.Str("playerName")
	pl.FatherName = p.Str("fatherName")
	pl.JerseyNo = p.Int("jerseyNo")
	pl.TeamID = p.Str("teamId")
}

func (s *Service) createPlayer(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	pl := sheetModel.Player{
		ID:           s.newID(sheetModel.PrefixPlayer),
		TeamName:     p.Str("teamName"),
		TournamentID: p.Str("tournamentId"),
		Sport:        p.Str("sport"),
		CategoryID:   p.Str("categoryId"),
		CategoryName: p.Str("categoryName"),
	}
	applyPlayer(&pl, p)
	switch {
	case pl.Name == "":
		return nil, sheetModel.ErrNameRequired
	case pl.TeamID == "":
		return nil, sheetModel.ErrTeamRequired
	}
	if p.Has("imageBase64") {
		url, err := s.storePhoto(ctx, repo, p.Str("imageBase64"))
		if err != nil {
			return nil, err
		}
		pl.PhotoURL = url
	}
	if err := repo.Create(ctx, &pl); err != nil {
		return nil, err
	}
	return sheetModel.OK("playerId", pl.ID, "photoUrl", pl.PhotoURL, "message", "Player created"), nil
}

// updatePlayer keeps the stored photo unless a new upload is sent. Moving
// a player to another team copies that team's context.
func (s *Service) updatePlayer(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("playerId")
	var pl sheetModel.Player
	if err := repo.Find(ctx, &pl, id); err != nil {
		return nil, wrapNotFound(err, "player", id)
	}
	previousTeam := pl.TeamID
	applyPlayer(&pl, p)
	switch {
	case pl.Name == "":
		return nil, sheetModel.ErrNameRequired
	case pl.TeamID == "":
		return nil, sheetModel.ErrTeamRequired
	}

	if pl.TeamID != previousTeam {
		var team sheetModel.Team
		if err := repo.Find(ctx, &team, pl.TeamID); err == nil {
			pl.TeamName = team.Name
			pl.TournamentID = team.TournamentID
			pl.Sport = team.Sport
			pl.CategoryID = team.CategoryID
			pl.CategoryName = team.CategoryName
		}
	}

	if p.Has("imageBase64") {
		url, err := s.storePhoto(ctx, repo, p.Str("imageBase64"))
		if err != nil {
			return nil, err
		}
		pl.PhotoURL = url
	}
	if err := repo.Save(ctx, &pl); err != nil {
		return nil, err
	}
	return sheetModel.OK("photoUrl", pl.PhotoURL, "message", "Player updated"), nil
}

func (s *Service) deletePlayer(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("playerId")
	if err := repo.Delete(ctx, &sheetModel.Player{}, id); err != nil {
		return nil, wrapNotFound(err, "player", id)
	}
	return sheetModel.OK("message", "Player deleted"), nil
}

func (s *Service) getMatches(ctx context.Context, repo repository.Repository, _ sheetModel.Params) (sheetModel.Response, error) {
	out := []sheetModel.Match{}
	if err := repo.List(ctx, &out, "match_date ASC, match_time ASC, id ASC"); err != nil {
		return nil, err
	}
	return sheetModel.OK("matches", out), nil
}

func applyMatch(m *sheetModel.Match, p sheetModel.Params) {
	m.TournamentID = p.Str("tournamentId")
	m.TournamentName = p.Str("tournamentName")
	m.CategoryID = p.Str("categoryId")
	m.CategoryName = p.Str("categoryName")
	m.Sport = p.Str("sport")
	m.TeamAID = p.Str("teamAId")
	m.TeamAName = p.Str("teamAName")
	m.TeamAScore = p.OptInt("teamAScore")
	m.TeamBID = p.Str("teamBId")
	m.TeamBName = p.Str("teamBName")
	m.TeamBScore = p.OptInt("teamBScore")
	m.MatchDate = p.Str("matchDate")
	m.MatchTime = p.Str("matchTime")
	m.Venue = p.Str("venue")
	m.Status = p.Str("status")
	if m.Status == "" {
		m.Status = "Upcoming"
	}
}

func (s *Service) createMatch(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	m := sheetModel.Match{ID: s.newID(sheetModel.PrefixMatch)}
	applyMatch(&m, p)
	if m.TeamAID == "" || m.TeamBID == "" {
		return nil, sheetModel.ErrTeamsRequired
	}
	if err := repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	if err := s.recomputeStandings(ctx, repo); err != nil {
		return nil, err
	}
	return sheetModel.OK("matchId", m.ID, "message", "Match created"), nil
}

func (s *Service) updateMatch(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("matchId")
	var m sheetModel.Match
	if err := repo.Find(ctx, &m, id); err != nil {
		return nil, wrapNotFound(err, "match", id)
	}
	applyMatch(&m, p)
	if m.TeamAID == "" || m.TeamBID == "" {
		return nil, sheetModel.ErrTeamsRequired
	}
	if err := repo.Save(ctx, &m); err != nil {
		return nil, err
	}
	if err := s.recomputeStandings(ctx, repo); err != nil {
		return nil, err
	}
	return sheetModel.OK("message", "Match updated"), nil
}

func (s *Service) deleteMatch(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	id := p.Str("matchId")
	if err := repo.Delete(ctx, &sheetModel.Match{}, id); err != nil {
		return nil, wrapNotFound(err, "match", id)
	}
	if err := s.recomputeStandings(ctx, repo); err != nil {
		return nil, err
	}
	return sheetModel.OK("message", "Match deleted"), nil
}

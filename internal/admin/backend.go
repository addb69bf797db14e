// Package admin sequences the dashboard's save and delete workflows:
// validation, enrichment from loaded data, dispatch to the backend adapter
// and reconciliation of the local view model.
package admin

import (
	"context"

	"github.com/festy23/tournament_portal/internal/backend"
	"github.com/festy23/tournament_portal/internal/model"
)

// Reader is the bulk read side of the backend adapter.
type Reader interface {
	GetTeams(ctx context.Context) []model.Team
	GetTournaments(ctx context.Context) []model.Tournament
	GetMatches(ctx context.Context) []model.Match
	GetPlayers(ctx context.Context) []model.Player
	GetStandings(ctx context.Context) []model.Standing
	GetBlogPosts(ctx context.Context) []model.BlogPost
	GetRules(ctx context.Context) model.Rules
	GetAdmins(ctx context.Context) []model.Admin
}

// Backend is everything the orchestrator needs from the adapter.
type Backend interface {
	Reader

	UpsertTournament(ctx context.Context, key model.Key, t model.Tournament) backend.Result
	DeleteTournament(ctx context.Context, id string) backend.Result
	UpsertTeam(ctx context.Context, key model.Key, team model.Team) backend.Result
	DeleteTeam(ctx context.Context, id string) backend.Result
	UpsertPlayer(ctx context.Context, key model.Key, p model.Player, team model.Team) backend.Result
	DeletePlayer(ctx context.Context, id string) backend.Result
	UpsertMatch(ctx context.Context, key model.Key, m model.Match) backend.Result
	DeleteMatch(ctx context.Context, id string) backend.Result
	DeleteStanding(ctx context.Context, teamID, category string) backend.Result
	UpsertBlogPost(ctx context.Context, key model.Key, b model.BlogPost) backend.Result
	DeleteBlogPost(ctx context.Context, id string) backend.Result
	AddComment(ctx context.Context, blogID, author, text string) backend.Result
	DeleteComment(ctx context.Context, id string) backend.Result
	SaveRules(ctx context.Context, rules model.Rules) backend.Result

	Login(ctx context.Context, email, password string) backend.LoginResult
	Logout(ctx context.Context) backend.Result
	CreateAdmin(ctx context.Context, name, email, password string) backend.Result
	DeleteAdmin(ctx context.Context, email string) backend.Result
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) backend.Result
}

var _ Backend = (*backend.Client)(nil)

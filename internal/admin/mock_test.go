package admin

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/festy23/tournament_portal/internal/backend"
	"github.com/festy23/tournament_portal/internal/model"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) GetTeams(ctx context.Context) []model.Team {
	return m.Called(ctx).Get(0).([]model.Team)
}

func (m *mockBackend) GetTournaments(ctx context.Context) []model.Tournament {
	return m.Called(ctx).Get(0).([]model.Tournament)
}

func (m *mockBackend) GetMatches(ctx context.Context) []model.Match {
	return m.Called(ctx).Get(0).([]model.Match)
}

func (m *mockBackend) GetPlayers(ctx context.Context) []model.Player {
	return m.Called(ctx).Get(0).([]model.Player)
}

func (m *mockBackend) GetStandings(ctx context.Context) []model.Standing {
	return m.Called(ctx).Get(0).([]model.Standing)
}

func (m *mockBackend) GetBlogPosts(ctx context.Context) []model.BlogPost {
	return m.Called(ctx).Get(0).([]model.BlogPost)
}

func (m *mockBackend) GetRules(ctx context.Context) model.Rules {
	return m.Called(ctx).Get(0).(model.Rules)
}

func (m *mockBackend) GetAdmins(ctx context.Context) []model.Admin {
	return m.Called(ctx).Get(0).([]model.Admin)
}

func (m *mockBackend) UpsertTournament(ctx context.Context, key model.Key, t model.Tournament) backend.Result {
	return m.Called(ctx, key, t).Get(0).(backend.Result)
}

func (m *mockBackend) DeleteTournament(ctx context.Context, id string) backend.Result {
	return m.Called(ctx, id).Get(0).(backend.Result)
}

func (m *mockBackend) UpsertTeam(ctx context.Context, key model.Key, team model.Team) backend.Result {
	return m.Called(ctx, key, team).Get(0).(backend.Result)
}

func (m *mockBackend) DeleteTeam(ctx context.Context, id string) backend.Result {
	return m.Called(ctx, id).Get(0).(backend.Result)
}

func (m *mockBackend) UpsertPlayer(ctx context.Context, key model.Key, p model.Player, team model.Team) backend.Result {
	return m.Called(ctx, key, p, team).Get(0).(backend.Result)
}

func (m *mockBackend) DeletePlayer(ctx context.Context, id string) backend.Result {
	return m.Called(ctx, id).Get(0).(backend.Result)
}

func (m *mockBackend) UpsertMatch(ctx context.Context, key model.Key, match model.Match) backend.Result {
	return m.Called(ctx, key, match).Get(0).(backend.Result)
}

func (m *mockBackend) DeleteMatch(ctx context.Context, id string) backend.Result {
	return m.Called(ctx, id).Get(0).(backend.Result)
}

func (m *mockBackend) DeleteStanding(ctx context.Context, teamID, category string) backend.Result {
	return m.Called(ctx, teamID, category).Get(0).(backend.Result)
}

func (m *mockBackend) UpsertBlogPost(ctx context.Context, key model.Key, b model.BlogPost) backend.Result {
	return m.Called(ctx, key, b).Get(0).(backend.Result)
}

func (m *mockBackend) DeleteBlogPost(ctx context.Context, id string) backend.Result {
	return m.Called(ctx, id).Get(0).(backend.Result)
}

func (m *mockBackend) AddComment(ctx context.Context, blogID, author, text string) backend.Result {
	return m.Called(ctx, blogID, author, text).Get(0).(backend.Result)
}

func (m *mockBackend) DeleteComment(ctx context.Context, id string) backend.Result {
	return m.Called(ctx, id).Get(0).(backend.Result)
}

func (m *mockBackend) SaveRules(ctx context.Context, rules model.Rules) backend.Result {
	return m.Called(ctx, rules).Get(0).(backend.Result)
}

func (m *mockBackend) Login(ctx context.Context, email, password string) backend.LoginResult {
	return m.Called(ctx, email, password).Get(0).(backend.LoginResult)
}

func (m *mockBackend) Logout(ctx context.Context) backend.Result {
	return m.Called(ctx).Get(0).(backend.Result)
}

func (m *mockBackend) CreateAdmin(ctx context.Context, name, email, password string) backend.Result {
	return m.Called(ctx, name, email, password).Get(0).(backend.Result)
}

func (m *mockBackend) DeleteAdmin(ctx context.Context, email string) backend.Result {
	return m.Called(ctx, email).Get(0).(backend.Result)
}

func (m *mockBackend) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) backend.Result {
	return m.Called(ctx, email, oldPassword, newPassword).Get(0).(backend.Result)
}

// countingReconciler records how often a reload was requested.
type countingReconciler struct {
	mu    sync.Mutex
	calls int
}

func (r *countingReconciler) Reconcile(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return nil
}

func (r *countingReconciler) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

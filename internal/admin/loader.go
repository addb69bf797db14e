package admin

import (
	"context"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Loader fetches every dashboard collection.
type Loader struct {
	repo  Reader
	clock clockwork.Clock
}

// NewLoader creates a Loader. A nil clock means the real clock.
func NewLoader(repo Reader, clock clockwork.Clock) *Loader {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Loader{repo: repo, clock: clock}
}

// LoadAll issues all eight list reads concurrently and waits for every one.
// Reads never fail: a collection the backend could not deliver is empty
// and the others are unaffected.
func (l *Loader) LoadAll(ctx context.Context) Snapshot {
	var snap Snapshot
	var g errgroup.Group

	g.Go(func() error {
		snap.Teams = l.repo.GetTeams(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Tournaments = l.repo.GetTournaments(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Matches = l.repo.GetMatches(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Players = l.repo.GetPlayers(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Standings = l.repo.GetStandings(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Blogs = l.repo.GetBlogPosts(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Rules = l.repo.GetRules(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Admins = l.repo.GetAdmins(ctx)
		return nil
	})

	_ = g.Wait()
	snap.LoadedAt = l.clock.Now()
	return snap
}

package admin

import (
	"context"

	"go.uber.org/zap"
)

// Reconciler brings the Store in line with the backend after a write.
type Reconciler interface {
	Reconcile(ctx context.Context) error
}

// FullReload reloads every collection and replaces the snapshot.
type FullReload struct {
	loader *Loader
	store  *Store
	logger *zap.SugaredLogger
}

// NewFullReload creates the default reconciler.
func NewFullReload(loader *Loader, store *Store, logger *zap.SugaredLogger) *FullReload {
	return &FullReload{loader: loader, store: store, logger: logger}
}

// Reconcile implements Reconciler. The reload outlives a cancelled request
// so a disconnecting client cannot leave the store half empty.
func (r *FullReload) Reconcile(ctx context.Context) error {
	snap := r.loader.LoadAll(context.WithoutCancel(ctx))
	r.store.Replace(snap)

	r.logger.Debugw("Dashboard data reloaded",
		"teams", len(snap.Teams),
		"tournaments", len(snap.Tournaments),
		"matches", len(snap.Matches),
		"players", len(snap.Players),
		"standings", len(snap.Standings),
		"blogs", len(snap.Blogs),
		"admins", len(snap.Admins),
	)
	return nil
}

package admin

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/backend"
	"github.com/festy23/tournament_portal/internal/model"
)

// AuthorizationHint accompanies player save failures caused by the backend
// lacking permission to store uploaded photos.
const AuthorizationHint = "The backend is not authorized to store uploaded photos. " +
	"Re-run the backend's authorization step, accept the storage permissions and save again."

// Draft is an entity staged for saving together with its provenance.
type Draft[T any] struct {
	Key   model.Key
	Value T
}

// Outcome reports what a save or delete did.
type Outcome struct {
	// Saved is true when the backend accepted the write.
	Saved bool `json:"saved"`
	// Skipped is true when nothing was sent.
	Skipped bool `json:"skipped,omitempty"`
	// Status is the message to show the operator.
	Status string `json:"status"`
	// Hint adds a diagnostic to a known failure class.
	Hint string `json:"hint,omitempty"`
	// DraftOpen is true when the form should stay open for correction.
	DraftOpen bool `json:"draft_open"`
	// DraftID is the temporary id of a draft left open, for resubmission.
	DraftID string `json:"draft_id,omitempty"`
}

var skipped = Outcome{Skipped: true, Status: "Nothing to save"}

// Confirmer approves destructive actions.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Confirmed is a fixed answer to every confirmation prompt.
type Confirmed bool

// Confirm implements Confirmer.
func (c Confirmed) Confirm(context.Context, string) bool {
	return bool(c)
}

// Service is the CRUD orchestrator.
type Service struct {
	repo       Backend
	reconciler Reconciler
	store      *Store
	clock      clockwork.Clock
	logger     *zap.SugaredLogger
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for default dates and temporary ids.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// New creates the orchestrator.
func New(repo Backend, reconciler Reconciler, store *Store, logger *zap.SugaredLogger, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		reconciler: reconciler,
		store:      store,
		clock:      clockwork.NewRealClock(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current dashboard data.
func (s *Service) Snapshot() Snapshot {
	return s.store.Snapshot()
}

// Reload refreshes the dashboard data.
func (s *Service) Reload(ctx context.Context) Snapshot {
	s.reconcile(ctx)
	return s.store.Snapshot()
}

func (s *Service) reconcile(ctx context.Context) {
	if err := s.reconciler.Reconcile(ctx); err != nil {
		s.logger.Errorw("Failed to reconcile dashboard data", "error", err)
	}
}

// finish turns a write result into an Outcome and reconciles on success.
func (s *Service) finish(ctx context.Context, entity, ref string, res backend.Result, status string) Outcome {
	if res.Success {
		s.logger.Infow("Saved", "entity", entity, "ref", ref)
		s.reconcile(ctx)
		return Outcome{Saved: true, Status: status}
	}

	s.logger.Warnw("Save rejected", "entity", entity, "ref", ref, "message", res.Message)
	return Outcome{Status: failureStatus(res.Message), DraftOpen: true}
}

// finishDraft is finish for keyed entities. A rejected draft gets a
// temporary id so a resubmission still parses as a create.
func (s *Service) finishDraft(ctx context.Context, kind model.Kind, key model.Key, res backend.Result, status string) Outcome {
	out := s.finish(ctx, kind.String(), key.String(), res, status)
	if out.DraftOpen {
		if id, ok := key.ID(); ok {
			out.DraftID = id
		} else {
			out.DraftID = model.NewTempID(kind, s.clock.Now())
		}
	}
	return out
}

func failureStatus(message string) string {
	if message == "" {
		message = "Error"
	}
	return "Failed: " + message
}

func savedStatus(key model.Key, noun string) string {
	if key.IsDraft() {
		return noun + " created"
	}
	return noun + " updated"
}

// SaveTournament validates, fills defaults and upserts a tournament.
func (s *Service) SaveTournament(ctx context.Context, d *Draft[model.Tournament]) (Outcome, error) {
	if d == nil {
		return skipped, nil
	}
	t := d.Value
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return Outcome{}, model.ErrNameRequired
	}
	if t.Sport == "" {
		t.Sport = model.SportFootball
	}
	t.Sport = t.Sport.Normalize()
	if t.CategoryID == "" {
		t.CategoryID = defaultCategoryID
	}
	if t.CategoryName == "" {
		t.CategoryName = defaultCategoryName
	}

	res := s.repo.UpsertTournament(ctx, d.Key, t)
	return s.finishDraft(ctx, model.KindTournament, d.Key, res, savedStatus(d.Key, "Tournament")), nil
}

const (
	defaultCategoryID   = "cat_1"
	defaultCategoryName = "General"
)

// SaveTeam validates a team and copies sport and category from its tournament.
func (s *Service) SaveTeam(ctx context.Context, d *Draft[model.Team]) (Outcome, error) {
	if d == nil {
		return skipped, nil
	}
	team := d.Value
	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return Outcome{}, model.ErrNameRequired
	}

	if team.TournamentID != "" {
		tournament, ok := s.store.Snapshot().Tournament(team.TournamentID)
		if !ok {
			return Outcome{}, model.ErrTournamentNotFound
		}
		team.Sport = tournament.Sport
		team.CategoryID = tournament.CategoryID
		team.CategoryName = tournament.CategoryName
	}
	if team.Sport == "" {
		team.Sport = model.SportFootball
	}
	if team.CategoryID == "" {
		team.CategoryID = defaultCategoryID
	}
	if team.CategoryName == "" {
		team.CategoryName = string(team.Category)
	}
	if team.CategoryName == "" {
		team.CategoryName = defaultCategoryName
	}
	if team.Category == "" {
		team.Category = model.TeamCategory(team.CategoryName).Normalize()
	}

	res := s.repo.UpsertTeam(ctx, d.Key, team)
	return s.finishDraft(ctx, model.KindTeam, d.Key, res, savedStatus(d.Key, "Team")), nil
}

// SavePlayer validates a player against the loaded teams and upserts it with
// its team's context.
func (s *Service) SavePlayer(ctx context.Context, d *Draft[model.Player]) (Outcome, error) {
	if d == nil {
		return skipped, nil
	}
	p := d.Value
	if strings.TrimSpace(p.TeamID) == "" {
		return Outcome{}, model.ErrNoTeamSelected
	}
	team, ok := s.store.Snapshot().Team(p.TeamID)
	if !ok {
		return Outcome{}, model.ErrTeamNotFound
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Outcome{}, model.ErrNameRequired
	}
	if p.JerseyNumber < 0 {
		return Outcome{}, model.ErrInvalidJerseyNumber
	}
	if model.ClassifyImage(p.Image) == model.ImageFailed {
		s.logger.Warnw("Player photo holds a failed upload marker", "key", d.Key.String(), "team_id", p.TeamID)
	}

	res := s.repo.UpsertPlayer(ctx, d.Key, p, team)
	out := s.finishDraft(ctx, model.KindPlayer, d.Key, res, "Player saved successfully")
	if !res.Success && strings.Contains(res.Message, "Authorization") {
		out.Hint = AuthorizationHint
	}
	return out, nil
}

// SaveMatch validates a match and refreshes its denormalized tournament and
// team fields from the loaded collections.
func (s *Service) SaveMatch(ctx context.Context, d *Draft[model.Match]) (Outcome, error) {
	if d == nil {
		return skipped, nil
	}
	m := d.Value
	if m.Date.IsZero() {
		return Outcome{}, model.ErrMatchDateRequired
	}
	if m.TeamA.ID != "" && m.TeamA.ID == m.TeamB.ID {
		return Outcome{}, model.ErrSameTeams
	}

	snap := s.store.Snapshot()
	if d.Key.IsDraft() {
		if m.TeamA.ID == "" || m.TeamB.ID == "" {
			return Outcome{}, model.ErrTeamsRequired
		}
		if m.TournamentID == "" {
			return Outcome{}, model.ErrTournamentRequired
		}
		if _, ok := snap.Tournament(m.TournamentID); !ok {
			return Outcome{}, model.ErrTournamentNotFound
		}
		for _, id := range []string{m.TeamA.ID, m.TeamB.ID} {
			if _, ok := snap.Team(id); !ok {
				return Outcome{}, model.ErrTeamNotFound
			}
		}
	}

	if tournament, ok := snap.Tournament(m.TournamentID); ok {
		m.TournamentName = tournament.Name
		m.Sport = tournament.Sport
		m.CategoryID = tournament.CategoryID
		m.CategoryName = tournament.CategoryName
	}
	if team, ok := snap.Team(m.TeamA.ID); ok {
		m.TeamA.Name = team.Name
	}
	if team, ok := snap.Team(m.TeamB.ID); ok {
		m.TeamB.Name = team.Name
	}
	if m.Status == "" {
		m.Status = model.StatusUpcoming
	}

	res := s.repo.UpsertMatch(ctx, d.Key, m)
	return s.finishDraft(ctx, model.KindMatch, d.Key, res, "Match saved successfully"), nil
}

// SaveBlogPost validates a post and dates it today when no date is given.
func (s *Service) SaveBlogPost(ctx context.Context, d *Draft[model.BlogPost]) (Outcome, error) {
	if d == nil {
		return skipped, nil
	}
	b := d.Value
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return Outcome{}, model.ErrTitleRequired
	}
	if b.Date.IsZero() {
		b.Date = model.DateOf(s.clock.Now())
	}

	res := s.repo.UpsertBlogPost(ctx, d.Key, b)
	return s.finishDraft(ctx, model.KindBlogPost, d.Key, res, "Post saved"), nil
}

// SaveRules replaces the published rules. Blank lines are dropped.
func (s *Service) SaveRules(ctx context.Context, rules *model.Rules) (Outcome, error) {
	if rules == nil {
		return skipped, nil
	}
	clean := model.Rules{
		Football:   compact(rules.Football),
		Volleyball: compact(rules.Volleyball),
	}

	res := s.repo.SaveRules(ctx, clean)
	return s.finish(ctx, "rules", "rules", res, "Rules updated"), nil
}

func compact(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Package service implements the reference backend's action protocol.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
	"github.com/festy23/tournament_portal/internal/sheet/repository"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// internalMessage replaces storage errors in responses.
const internalMessage = "internal storage error"

var errReplayed = errors.New("idempotency key already stored")

// handlerFunc runs one action against repo.
type handlerFunc func(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error)

type action struct {
	run   handlerFunc
	write bool
}

// Service dispatches actions.
type Service struct {
	repo         repository.Repository
	clock        clockwork.Clock
	photoBaseURL string
	bcryptCost   int
	newID        func(prefix string) string
	logger       *zap.SugaredLogger
	actions      map[string]action
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithIDs replaces the id generator.
func WithIDs(gen func(prefix string) string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// New creates a Service. Photo URLs are built on photoBaseURL.
func New(repo repository.Repository, photoBaseURL string, logger *zap.SugaredLogger, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
		clock:        clockwork.NewRealClock(),
		photoBaseURL: strings.TrimRight(photoBaseURL, "/"),
		bcryptCost:   bcrypt.DefaultCost,
		newID:        randomID,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.actions = s.routes()
	return s
}

func randomID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func (s *Service) routes() map[string]action {
	read := func(fn handlerFunc) action { return action{run: fn} }
	write := func(fn handlerFunc) action { return action{run: fn, write: true} }

	return map[string]action{
		"getTournaments":   read(s.getTournaments),
		"createTournament": write(s.createTournament),
		"updateTournament": write(s.updateTournament),
		"deleteTournament": write(s.deleteTournament),

		"getTeams":   read(s.getTeams),
		"createTeam": write(s.createTeam),
		"updateTeam": write(s.updateTeam),
		"deleteTeam": write(s.deleteTeam),

		"getPlayers":   read(s.getPlayers),
		"createPlayer": write(s.createPlayer),
		"updatePlayer": write(s.updatePlayer),
		"deletePlayer": write(s.deletePlayer),

		"getMatches":  read(s.getMatches),
		"createMatch": write(s.createMatch),
		"updateMatch": write(s.updateMatch),
		"deleteMatch": write(s.deleteMatch),

		"getStandings":   read(s.getStandings),
		"deleteStanding": write(s.deleteStanding),

		"getBlogPosts":   read(s.getBlogPosts),
		"createBlogPost": write(s.createBlogPost),
		"updateBlogPost": write(s.updateBlogPost),
		"deleteBlogPost": write(s.deleteBlogPost),

		"getComments":   read(s.getComments),
		"addComment":    write(s.addComment),
		"deleteComment": write(s.deleteComment),

		"getRules":  read(s.getRules),
		"saveRules": write(s.saveRules),

		"login":          read(s.login),
		"logout":         read(s.logout),
		"getAdmins":      read(s.getAdmins),
		"createAdmin":    write(s.createAdmin),
		"deleteAdmin":    write(s.deleteAdmin),
		"changePassword": write(s.changePassword),
	}
}

// Exec runs one action. Domain failures become success=false responses.
// Writes run in a transaction together with their idempotency record, so a
// retried write with a stored key replays the first response.
func (s *Service) Exec(ctx context.Context, p sheetModel.Params) sheetModel.Response {
	name := p.Action()
	act, ok := s.actions[name]
	if !ok {
		s.logger.Debugw("Unknown action", "action", name)
		return sheetModel.Fail(fmt.Sprintf("%s: %q", sheetModel.ErrUnknownAction, name))
	}

	if !act.write {
		resp, err := act.run(ctx, s.repo, p)
		if err != nil {
			return s.failure(name, err)
		}
		return resp
	}

	key := p.IdempotencyKey()
	if key != "" {
		if resp, ok := s.replay(ctx, key); ok {
			s.logger.Infow("Replaying idempotent write", "action", name, "idempotency_key", key)
			return resp
		}
	}

	var resp sheetModel.Response
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		r, err := act.run(ctx, tx, p)
		if err != nil {
			return err
		}
		resp = r
		if key == "" {
			return nil
		}
		encoded, err := r.Encode()
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		err = tx.SaveReplay(ctx, &sheetModel.IdempotencyKey{
			Key:       key,
			Action:    name,
			Response:  string(encoded),
			CreatedAt: s.clock.Now(),
		})
		if errors.Is(err, repository.ErrDuplicate) {
			return errReplayed
		}
		return err
	})

	switch {
	case errors.Is(err, errReplayed):
		if stored, ok := s.replay(ctx, key); ok {
			return stored
		}
		return sheetModel.Fail(internalMessage)
	case err != nil:
		return s.failure(name, err)
	}

	s.logger.Infow("Action applied", "action", name)
	return resp
}

func (s *Service) replay(ctx context.Context, key string) (sheetModel.Response, bool) {
	stored, err := s.repo.FindReplay(ctx, key)
	if err != nil {
		if !errors.Is(err, sheetModel.ErrNotFound) {
			s.logger.Errorw("Failed to look up idempotency key", "idempotency_key", key, "error", err)
		}
		return nil, false
	}
	resp, err := sheetModel.DecodeResponse([]byte(stored.Response))
	if err != nil {
		s.logger.Errorw("Stored response is unreadable", "idempotency_key", key, "error", err)
		return nil, false
	}
	return resp, true
}

func (s *Service) failure(action string, err error) sheetModel.Response {
	if sheetModel.IsDomain(err) {
		s.logger.Infow("Action rejected", "action", action, "reason", err)
		return sheetModel.Fail(err.Error())
	}
	s.logger.Errorw("Action failed", "action", action, "error", err)
	return sheetModel.Fail(internalMessage)
}

// SeedAdmin creates the first account on an empty store. It is a no-op
// once any account exists.
func (s *Service) SeedAdmin(ctx context.Context, name, email, password string) error {
	n, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := s.newAdmin(ctx, s.repo, name, email, password); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	s.logger.Infow("Seeded first admin", "email", email)
	return nil
}

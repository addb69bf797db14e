package admin

import (
	"context"
	"strings"

	"github.com/festy23/tournament_portal/internal/backend"
	"github.com/festy23/tournament_portal/internal/model"
)

var cancelled = Outcome{Skipped: true, Status: "Cancelled"}

// remove runs the shared delete sequence: confirm, dispatch, then reload
// whatever the backend answered. The result is reported but never gates
// the reload.
func (s *Service) remove(ctx context.Context, confirm Confirmer, prompt, entity, ref string, del func() backend.Result) (Outcome, error) {
	if strings.TrimSpace(ref) == "" {
		return Outcome{}, model.ErrIDRequired
	}
	if confirm == nil || !confirm.Confirm(ctx, prompt) {
		return cancelled, nil
	}

	res := del()
	if !res.Success {
		s.logger.Warnw("Delete reported failure", "entity", entity, "ref", ref, "message", res.Message)
	} else {
		s.logger.Infow("Deleted", "entity", entity, "ref", ref)
	}

	s.reconcile(ctx)

	if !res.Success {
		return Outcome{Status: failureStatus(res.Message)}, nil
	}
	return Outcome{Saved: true, Status: "Deleted"}, nil
}

// DeleteTournament deletes a tournament after confirmation.
func (s *Service) DeleteTournament(ctx context.Context, confirm Confirmer, id string) (Outcome, error) {
	return s.remove(ctx, confirm, "Delete this tournament?", "tournament", id, func() backend.Result {
		return s.repo.DeleteTournament(ctx, id)
	})
}

// DeleteTeam deletes a team after confirmation.
func (s *Service) DeleteTeam(ctx context.Context, confirm Confirmer, id string) (Outcome, error) {
	return s.remove(ctx, confirm, "Delete this team?", "team", id, func() backend.Result {
		return s.repo.DeleteTeam(ctx, id)
	})
}

// DeletePlayer deletes a player after confirmation.
func (s *Service) DeletePlayer(ctx context.Context, confirm Confirmer, id string) (Outcome, error) {
	return s.remove(ctx, confirm, "Delete this player?", "player", id, func() backend.Result {
		return s.repo.DeletePlayer(ctx, id)
	})
}

// DeleteMatch deletes a match after confirmation.
func (s *Service) DeleteMatch(ctx context.Context, confirm Confirmer, id string) (Outcome, error) {
	return s.remove(ctx, confirm, "Delete this match?", "match", id, func() backend.Result {
		return s.repo.DeleteMatch(ctx, id)
	})
}

// DeleteStanding removes a team from one category's table after confirmation.
func (s *Service) DeleteStanding(ctx context.Context, confirm Confirmer, teamID, category string) (Outcome, error) {
	if strings.TrimSpace(category) == "" {
		return Outcome{}, model.ErrIDRequired
	}
	return s.remove(ctx, confirm, "Remove this team from standings?", "standing", teamID, func() backend.Result {
		return s.repo.DeleteStanding(ctx, teamID, category)
	})
}

// DeleteBlogPost deletes a blog post after confirmation.
func (s *Service) DeleteBlogPost(ctx context.Context, confirm Confirmer, id string) (Outcome, error) {
	return s.remove(ctx, confirm, "Delete this post?", "blog post", id, func() backend.Result {
		return s.repo.DeleteBlogPost(ctx, id)
	})
}

// DeleteComment deletes a comment after confirmation.
func (s *Service) DeleteComment(ctx context.Context, confirm Confirmer, id string) (Outcome, error) {
	return s.remove(ctx, confirm, "Delete this comment?", "comment", id, func() backend.Result {
		return s.repo.DeleteComment(ctx, id)
	})
}

// DeleteAdmin deletes the account registered under email after confirmation.
func (s *Service) DeleteAdmin(ctx context.Context, confirm Confirmer, email string) (Outcome, error) {
	return s.remove(ctx, confirm, "Delete admin "+email+"?", "admin", email, func() backend.Result {
		return s.repo.DeleteAdmin(ctx, email)
	})
}

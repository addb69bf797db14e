package admin

import (
	"context"
	"strings"

	"github.com/festy23/tournament_portal/internal/backend"
	"github.com/festy23/tournament_portal/internal/model"
)

// NewAdmin is the create-account form.
type NewAdmin struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChange is the change-password form.
type PasswordChange struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// NewComment is a reader comment awaiting submission.
type NewComment struct {
	BlogID     string `json:"blog_id"`
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
}

// Login checks credentials with the backend.
func (s *Service) Login(ctx context.Context, email, password string) (model.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.Session{}, model.ErrEmailRequired
	}
	if password == "" {
		return model.Session{}, model.ErrPasswordRequired
	}

	res := s.repo.Login(ctx, email, password)
	if !res.Success {
		s.logger.Warnw("Login rejected", "email", email, "message", res.Message)
		return model.Session{}, ErrInvalidCredentials
	}
	s.logger.Infow("Admin logged in", "email", email, "must_change_password", res.Session.MustChangePassword)
	return res.Session, nil
}

// Logout notifies the backend. The local session ends regardless.
func (s *Service) Logout(ctx context.Context, email string) backend.Result {
	res := s.repo.Logout(ctx)
	if !res.Success {
		s.logger.Warnw("Logout reported failure", "email", email, "message", res.Message)
	}
	return res
}

// CreateAdmin validates and creates a dashboard account.
func (s *Service) CreateAdmin(ctx context.Context, req *NewAdmin) (Outcome, error) {
	if req == nil {
		return skipped, nil
	}
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	switch {
	case name == "":
		return Outcome{}, model.ErrNameRequired
	case email == "":
		return Outcome{}, model.ErrEmailRequired
	case req.Password == "":
		return Outcome{}, model.ErrPasswordRequired
	}

	res := s.repo.CreateAdmin(ctx, name, email, req.Password)
	return s.finish(ctx, "admin", email, res, messageOr(res.Message, "Admin created")), nil
}

// ChangePassword changes the password of the signed-in admin.
func (s *Service) ChangePassword(ctx context.Context, email string, req *PasswordChange) (Outcome, error) {
	if req == nil {
		return skipped, nil
	}
	if req.NewPassword != req.ConfirmPassword {
		return Outcome{}, model.ErrPasswordMismatch
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return Outcome{}, model.ErrPasswordRequired
	}
	if strings.TrimSpace(email) == "" {
		return Outcome{}, model.ErrEmailRequired
	}

	res := s.repo.ChangePassword(ctx, email, req.OldPassword, req.NewPassword)
	return s.finish(ctx, "password", email, res, messageOr(res.Message, "Password changed")), nil
}

// AddComment validates and posts a comment. Comments are not part of the
// dashboard snapshot, so no reload follows.
func (s *Service) AddComment(ctx context.Context, req *NewComment) (Outcome, error) {
	if req == nil {
		return skipped, nil
	}
	c := NewComment{
		BlogID:     strings.TrimSpace(req.BlogID),
		AuthorName: strings.TrimSpace(req.AuthorName),
		Text:       strings.TrimSpace(req.Text),
	}
	switch {
	case c.BlogID == "":
		return Outcome{}, model.ErrBlogRequired
	case c.AuthorName == "":
		return Outcome{}, model.ErrAuthorRequired
	case c.Text == "":
		return Outcome{}, model.ErrTextRequired
	}

	res := s.repo.AddComment(ctx, c.BlogID, c.AuthorName, c.Text)
	if !res.Success {
		s.logger.Warnw("Comment rejected", "blog_id", c.BlogID, "message", res.Message)
		return Outcome{Status: failureStatus(res.Message), DraftOpen: true}, nil
	}
	return Outcome{Saved: true, Status: "Comment added"}, nil
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

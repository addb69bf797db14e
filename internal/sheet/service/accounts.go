package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
	"github.com/festy23/tournament_portal/internal/sheet/repository"
)

func (s *Service) login(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	admin, err := s.authenticate(ctx, repo, p.Str("email"), p.Str("password"), sheetModel.ErrCredentials)
	if err != nil {
		return nil, err
	}
	return sheetModel.OK("name", admin.Name, "mustChangePassword", admin.MustChangePassword), nil
}

// authenticate checks a password. Unknown accounts and wrong passwords
// both yield failure.
func (s *Service) authenticate(ctx context.Context, repo repository.Repository, email, password string, failure error) (*sheetModel.Admin, error) {
	admin, err := repo.AdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sheetModel.ErrNotFound) {
			return nil, failure
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, failure
	}
	return admin, nil
}

// logout has no server-side session to end.
func (s *Service) logout(context.Context, repository.Repository, sheetModel.Params) (sheetModel.Response, error) {
	return sheetModel.OK("message", "Logged out"), nil
}

func (s *Service) getAdmins(ctx context.Context, repo repository.Repository, _ sheetModel.Params) (sheetModel.Response, error) {
	out := []sheetModel.Admin{}
	if err := repo.List(ctx, &out, "created_at ASC, email ASC"); err != nil {
		return nil, err
	}
	return sheetModel.OK("admins", out), nil
}

func (s *Service) createAdmin(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	admin, err := s.newAdmin(ctx, repo, p.Str("name"), p.Str("email"), p.Str("password"))
	if err != nil {
		return nil, err
	}
	return sheetModel.OK("adminId", admin.ID, "message", "Admin created"), nil
}

// newAdmin stores an account that must change its password on first login.
func (s *Service) newAdmin(ctx context.Context, repo repository.Repository, name, email, password string) (*sheetModel.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" || email == "" || password == "" {
		return nil, sheetModel.ErrAdminIncomplete
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	admin := &sheetModel.Admin{
		ID:                 s.newID(sheetModel.PrefixAdmin),
		Name:               name,
		Email:              email,
		PasswordHash:       string(hash),
		MustChangePassword: true,
		CreatedAt:          s.clock.Now(),
	}
	if err := repo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, sheetModel.ErrAdminExists
		}
		return nil, err
	}
	return admin, nil
}

func (s *Service) deleteAdmin(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	email := p.Str("email")
	if _, err := repo.AdminByEmail(ctx, email); err != nil {
		return nil, wrapNotFound(err, "admin", email)
	}
	n, err := repo.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 1 {
		return nil, sheetModel.ErrLastAdmin
	}
	if err := repo.DeleteAdminByEmail(ctx, email); err != nil {
		return nil, wrapNotFound(err, "admin", email)
	}
	return sheetModel.OK("message", "Admin deleted"), nil
}

func (s *Service) changePassword(ctx context.Context, repo repository.Repository, p sheetModel.Params) (sheetModel.Response, error) {
	newPassword := p.Str("newPassword")
	if newPassword == "" {
		return nil, sheetModel.ErrPasswordRequired
	}
	admin, err := s.authenticate(ctx, repo, p.Str("email"), p.Str("oldPassword"), sheetModel.ErrIncorrectPassword)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = string(hash)
	admin.MustChangePassword = false
	if err := repo.Save(ctx, admin); err != nil {
		return nil, err
	}
	return sheetModel.OK("message", "Password changed"), nil
}

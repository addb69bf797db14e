// Package repository provides data access for the reference backend.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
)

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// Repository defines data access for stored records. Generic methods take a
// pointer to a record (or a slice of records) and rely on the record's
// "id" primary key column.
type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// List loads every record into dest ordered by order.
	List(ctx context.Context, dest any, order string) error
	// Find loads the record with id into dest.
	Find(ctx context.Context, dest any, id string) error
	// Create inserts a record.
	Create(ctx context.Context, record any) error
	// Save updates every column of a record.
	Save(ctx context.Context, record any) error
	// Delete removes the record of dest's type with id.
	Delete(ctx context.Context, dest any, id string) error

	// CommentsByBlog returns a post's comments, oldest first.
	CommentsByBlog(ctx context.Context, blogID string) ([]sheetModel.Comment, error)
	// DeleteCommentsByBlog removes every comment of a post.
	DeleteCommentsByBlog(ctx context.Context, blogID string) error

	// AdminByEmail finds an account by lower-cased email.
	AdminByEmail(ctx context.Context, email string) (*sheetModel.Admin, error)
	// DeleteAdminByEmail removes an account by lower-cased email.
	DeleteAdminByEmail(ctx context.Context, email string) error
	// CountAdmins returns the number of accounts.
	CountAdmins(ctx context.Context) (int64, error)

	// ReplaceStandings swaps the whole standings table for rows.
	ReplaceStandings(ctx context.Context, rows []sheetModel.Standing) error
	// DeleteStanding removes one team's row from one category.
	DeleteStanding(ctx context.Context, teamID, category string) error

	// FindReplay returns the stored response of an idempotency key.
	FindReplay(ctx context.Context, key string) (*sheetModel.IdempotencyKey, error)
	// SaveReplay stores the response of an idempotency key. A key that is
	// already stored yields ErrDuplicate.
	SaveReplay(ctx context.Context, replay *sheetModel.IdempotencyKey) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) List(ctx context.Context, dest any, order string) error {
	q := r.db.WithContext(ctx)
	if order != "" {
		q = q.Order(order)
	}
	return q.Find(dest).Error
}

func (r *repository) Find(ctx context.Context, dest any, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sheetModel.ErrNotFound
	}
	return err
}

func (r *repository) Create(ctx context.Context, record any) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if isDuplicateError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *repository) Save(ctx context.Context, record any) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) Delete(ctx context.Context, dest any, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(dest))
}

func (r *repository) CommentsByBlog(ctx context.Context, blogID string) ([]sheetModel.Comment, error) {
	comments := []sheetModel.Comment{}
	err := r.db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *repository) DeleteCommentsByBlog(ctx context.Context, blogID string) error {
	return r.db.WithContext(ctx).Where("blog_id = ?", blogID).Delete(&sheetModel.Comment{}).Error
}

func (r *repository) AdminByEmail(ctx context.Context, email string) (*sheetModel.Admin, error) {
	var admin sheetModel.Admin
	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sheetModel.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) DeleteAdminByEmail(ctx context.Context, email string) error {
	return affected(r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).Delete(&sheetModel.Admin{}))
}

func (r *repository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&sheetModel.Admin{}).Count(&n).Error
	return n, err
}

func (r *repository) ReplaceStandings(ctx context.Context, rows []sheetModel.Standing) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&sheetModel.Standing{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}

func (r *repository) DeleteStanding(ctx context.Context, teamID, category string) error {
	return affected(r.db.WithContext(ctx).
		Where("team_id = ? AND category = ?", teamID, category).
		Delete(&sheetModel.Standing{}))
}

func (r *repository) FindReplay(ctx context.Context, key string) (*sheetModel.IdempotencyKey, error) {
	var replay sheetModel.IdempotencyKey
	err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&replay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sheetModel.ErrNotFound
		}
		return nil, err
	}
	return &replay, nil
}

func (r *repository) SaveReplay(ctx context.Context, replay *sheetModel.IdempotencyKey) error {
	return r.Create(ctx, replay)
}

func affected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return sheetModel.ErrNotFound
	}
	return nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const emailIndex = "users_email_key"

type userRepo struct {
	postgresRepo
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *userRepo) Create(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Name, u.Email, u.PasswordHash, u.Phone, u.Company, u.Address, u.CreatedAt, u.UpdatedAt).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if uniqueViolationOn(err, emailIndex) {
		return entities.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (entities.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email})
}

func (r *userRepo) getOne(ctx context.Context, where sq.Eq) (entities.User, error) {
	query, args := r.withLock(ctx, r.qb.Select(userColumns...).
		From("users").
		Where(where)).
		MustSql()

	var row User
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(row), nil
}

func (r *userRepo) Update(ctx context.Context, u entities.User) error {
	query, args := r.qb.Update("users").
		SetMap(map[string]any{
			"name":          u.Name,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
			"phone":         u.Phone,
			"company":       u.Company,
			"address":       u.Address,
			"updated_at":    u.UpdatedAt,
		}).
		Where(sq.Eq{"id": u.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if uniqueViolationOn(err, emailIndex) {
		return entities.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireAffected(res, entities.ErrUserNotFound)
}

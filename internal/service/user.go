package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	Create(ctx context.Context, u entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Update(ctx context.Context, u entities.User) error
}

type TokenIssuer interface {
	NewToken(userID uuid.UUID) (string, error)
}

type userService struct {
	logger *slog.Logger
	repo   UserRepo
	tokens TokenIssuer
	cost   int
	now    func() time.Time
}

func NewUserService(logger *slog.Logger, repo UserRepo, tokens TokenIssuer) *userService {
	return &userService{
		logger: logger.With(slog.String("service", "user")),
		repo:   repo,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

func (s *userService) Register(ctx context.Context, reg entities.Registration) (entities.Session, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = normalizeEmail(reg.Email)
	if err := validateStruct(reg); err != nil {
		return entities.Session{}, err
	}

	_, err := s.repo.GetByEmail(ctx, reg.Email)
	if err == nil {
		return entities.Session{}, entities.ErrEmailTaken
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return entities.Session{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	user := entities.User{
		ID:           uuid.New(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// уникальность email дополнительно гарантирует индекс
	if err := s.repo.Create(ctx, user); err != nil {
		return entities.Session{}, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return s.session(user)
}

func (s *userService) Login(ctx context.Context, email, password string) (entities.Session, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.Session{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.Session{}, entities.ErrInvalidCredentials
	}
	return s.session(user)
}

func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (entities.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch entities.ProfilePatch) (entities.User, error) {
	patch.Name = strings.TrimSpace(patch.Name)
	patch.Email = normalizeEmail(patch.Email)
	patch.Phone = strings.TrimSpace(patch.Phone)
	patch.Company = strings.TrimSpace(patch.Company)
	patch.Address = strings.TrimSpace(patch.Address)
	if err := validateStruct(patch); err != nil {
		return entities.User{}, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	if patch.Email != "" && patch.Email != user.Email {
		existing, err := s.repo.GetByEmail(ctx, patch.Email)
		if err == nil && existing.ID != user.ID {
			return entities.User{}, entities.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
			return entities.User{}, fmt.Errorf("failed to check email: %w", err)
		}
		user.Email = patch.Email
	}
	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Phone != "" {
		user.Phone = patch.Phone
	}
	if patch.Company != "" {
		user.Company = patch.Company
	}
	if patch.Address != "" {
		user.Address = patch.Address
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, change entities.PasswordChange) error {
	if err := validateStruct(change); err != nil {
		return err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(change.CurrentPassword)); err != nil {
		return entities.ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = s.now().UTC()

	return s.repo.Update(ctx, user)
}

func (s *userService) session(user entities.User) (entities.Session, error) {
	token, err := s.tokens.NewToken(user.ID)
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return entities.Session{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

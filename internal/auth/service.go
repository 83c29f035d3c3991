// Package auth covers account registration, credential checks and session
// tokens. Passwords are stored as bcrypt hashes only.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/repository"
)

const defaultBaseCurrency = "INR"

// ProfilePatch is a partial update for the user's own profile. Nil fields
// are left untouched. Email and password change through dedicated flows, not
// here.
type ProfilePatch struct {
	Name         *string
	AvatarURL    *string
	BaseCurrency *string
}

type Service struct {
	users  repository.UserRepository
	tokens *TokenIssuer
	logger *slog.Logger
	now    func() time.Time
}

func NewService(users repository.UserRepository, tokens *TokenIssuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, tokens: tokens, logger: logger, now: time.Now}
}

// Signup registers a new account and returns the user with a fresh session
// token. Duplicate emails surface as common.ErrEmailTaken.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	v := common.NewValidator()
	v.Field("name", name, common.Required, common.MaxLength(120))
	v.Field("email", email, common.Required, common.Email)
	v.Field("password", password, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, "", err
	}
	if len(password) < 8 {
		return nil, "", common.NewAppError("VALIDATION_ERROR", "password must be at least 8 characters", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		AvatarURL:    defaultAvatarURL(name),
		BaseCurrency: defaultBaseCurrency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("auth.signup.ok", "user_id", created.ID, "email", created.Email)

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login checks credentials and returns the user with a session token. The
// error is identical for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	badCredentials := common.NewAppError("AUTH_ERROR", "invalid email or password", common.ErrUnauthorized)

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Info("auth.login.unknown_email", "email", email)
		return nil, "", badCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("auth.login.bad_password", "user_id", user.ID)
		return nil, "", badCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("auth.login.ok", "user_id", user.ID)
	return user, token, nil
}

// Authenticate resolves a session token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies a partial profile patch and returns the updated user.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		v := common.NewValidator()
		v.Field("name", *patch.Name, common.Required, common.MaxLength(120))
		if err := common.ValidateAndReturnError(v); err != nil {
			return nil, err
		}
		user.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}
	if patch.BaseCurrency != nil {
		code := strings.ToUpper(strings.TrimSpace(*patch.BaseCurrency))
		v := common.NewValidator()
		v.Field("base_currency", code, common.Required, common.CurrencyCode)
		if err := common.ValidateAndReturnError(v); err != nil {
			return nil, err
		}
		user.BaseCurrency = code
	}
	user.UpdatedAt = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func defaultAvatarURL(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name)
}

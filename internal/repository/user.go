package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/gen/ent"
	"github.com/expensehub/expense-tracker/gen/ent/user"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
)

// UserRepository is the credential store: a keyed lookup over accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row, err := r.client.User.Query().Where(user.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return toUser(row), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row, err := r.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to look up user", "error", err)
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return toUser(row), nil
}

func (r *userRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	b := r.client.User.Create().
		SetName(u.Name).
		SetEmail(u.Email).
		SetPasswordHash(u.PasswordHash).
		SetAvatarURL(u.AvatarURL).
		SetBaseCurrency(u.BaseCurrency)
	if u.ID != uuid.Nil {
		b = b.SetID(u.ID)
	}

	row, err := b.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.ErrEmailTaken
		}
		r.logger.Error("failed to create user", "email", u.Email, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	return toUser(row), nil
}

func (r *userRepository) Update(ctx context.Context, u *entity.User) error {
	err := r.client.User.UpdateOneID(u.ID).
		SetName(u.Name).
		SetPasswordHash(u.PasswordHash).
		SetAvatarURL(u.AvatarURL).
		SetBaseCurrency(u.BaseCurrency).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to update user", "user_id", u.ID, "error", err)
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

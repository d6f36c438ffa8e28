package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielokoye/meddocs/gen/ent"
	entuser "github.com/danielokoye/meddocs/gen/ent/user"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/entity"
)

// UserRepository exposes the slice of user identity the pipeline needs to
// scope documents. Credentials live in the external auth module.
type UserRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, username string) (*entity.User, error)
}

type userRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUserRepository(entc *ent.Client, logger *slog.Logger) UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &userRepo{ent: entc, logger: logger}
}

func (r *userRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.User.Query().Where(entuser.ID(id)).Exist(ctx)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	row, err := r.ent.User.Query().Where(entuser.Username(username)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
		}
		return nil, err
	}
	return &entity.User{ID: row.ID, Username: row.Username, CreatedAt: row.CreatedAt}, nil
}

func (r *userRepo) Create(ctx context.Context, username string) (*entity.User, error) {
	row, err := r.ent.User.Create().SetUsername(username).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "username", username, "error", err)
		return nil, err
	}
	r.logger.Info("user created", "user_id", row.ID, "username", username)
	return &entity.User{ID: row.ID, Username: row.Username, CreatedAt: row.CreatedAt}, nil
}

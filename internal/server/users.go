package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/danielokoye/meddocs/gen/proto/meddocs/v1"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/repository"
)

type UsersService struct {
	v1.UnimplementedUsersServiceServer
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUsersService(users repository.UserRepository, logger *slog.Logger) *UsersService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsersService{users: users, logger: logger}
}

func (s *UsersService) CreateUser(ctx context.Context, req *v1.CreateUserRequest) (*v1.CreateUserResponse, error) {
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	u, err := s.users.Create(ctx, username)
	if err != nil {
		s.logger.Error("create user failed", "username", username, "error", err)
		return nil, status.Error(codes.Internal, "create user failed")
	}
	return &v1.CreateUserResponse{
		UserId:    u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *UsersService) GetUser(ctx context.Context, req *v1.GetUserRequest) (*v1.GetUserResponse, error) {
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		return nil, status.Errorf(codes.Internal, "load user: %v", err)
	}
	return &v1.GetUserResponse{
		UserId:    u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

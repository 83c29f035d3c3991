package server

import (
	"context"
	"errors"
	"log/slog"

	v1 "github.com/expensehub/expense-tracker/gen/proto/expensehub/v1"
	"github.com/expensehub/expense-tracker/internal/auth"
	"github.com/expensehub/expense-tracker/internal/common"
)

type AuthServer struct {
	v1.UnimplementedAuthServiceServer
	svc    *auth.Service
	logger *slog.Logger
}

func NewAuthServer(svc *auth.Service, logger *slog.Logger) *AuthServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthServer{svc: svc, logger: logger}
}

func (s *AuthServer) Signup(ctx context.Context, req *v1.SignupRequest) (*v1.SignupResponse, error) {
	user, token, err := s.svc.Signup(ctx, req.GetName(), req.GetEmail(), req.GetPassword())
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.FailedPreconditionError("email is already registered")
		}
		return nil, err
	}
	return &v1.SignupResponse{User: toPBUser(user), Token: token}, nil
}

func (s *AuthServer) Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginResponse, error) {
	user, token, err := s.svc.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, common.UnauthenticatedError("invalid email or password")
		}
		return nil, err
	}
	return &v1.LoginResponse{User: toPBUser(user), Token: token}, nil
}

func (s *AuthServer) GetProfile(ctx context.Context, _ *v1.GetProfileRequest) (*v1.GetProfileResponse, error) {
	user, err := userFromContext(ctx, s.svc)
	if err != nil {
		return nil, err
	}
	return &v1.GetProfileResponse{User: toPBUser(user)}, nil
}

func (s *AuthServer) UpdateProfile(ctx context.Context, req *v1.UpdateProfileRequest) (*v1.UpdateProfileResponse, error) {
	user, err := userFromContext(ctx, s.svc)
	if err != nil {
		return nil, err
	}
	updated, err := s.svc.UpdateProfile(ctx, user.ID, auth.ProfilePatch{
		Name:         req.Name,
		AvatarURL:    req.AvatarUrl,
		BaseCurrency: req.BaseCurrency,
	})
	if err != nil {
		return nil, err
	}
	return &v1.UpdateProfileResponse{User: toPBUser(updated)}, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/internal/repository"
	"github.com/lucasroqe/PDM-App-School/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("Credenciais inválidas")
	ErrUserNotFound       = errors.New("Usuário não encontrado")
)

// AuthService authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the token identified by jti until it would have expired
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Me(ctx context.Context, identity model.Identity) (*dto.UserResponse, error)
}

type authService struct {
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates an AuthService
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. look up the account
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to load user", zap.Error(err))
		return nil, err
	}

	// 2. verify password (bcrypt); same error as an unknown email
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. issue token
	token, err := s.jwtMgr.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return nil, err
	}

	// 4. build response
	resp, err := s.userResponse(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *resp}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.blacklist == nil || jti == "" {
		return nil
	}
	if err := s.blacklist.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("failed to blacklist token", zap.String("jti", jti), zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, identity model.Identity) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load user", zap.Int64("user_id", identity.UserID), zap.Error(err))
		return nil, err
	}
	return s.userResponse(ctx, user)
}

func (s *authService) userResponse(ctx context.Context, user *model.User) (*dto.UserResponse, error) {
	names, err := s.repo.User.DisplayNames(ctx, []int64{user.ID})
	if err != nil {
		s.logger.Error("failed to resolve display name", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	return &dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
		Name:  names[user.ID],
	}, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lucasroqe/PDM-App-School/config"
	"github.com/lucasroqe/PDM-App-School/internal/repository"
	"github.com/lucasroqe/PDM-App-School/pkg/jwt"
)

// Errors shared by several services
var (
	ErrForbidden       = errors.New("Acesso negado")
	ErrStudentNotFound = errors.New("Aluno não encontrado")
)

// TokenBlacklist revokes session tokens before they expire
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// Service aggregate entry point for every service
type Service struct {
	Auth         AuthService
	Registration RegistrationService
	Report       ReportService
	Announcement AnnouncementService
}

// NewService builds the aggregate. blacklist may be nil when Redis is disabled.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, jwtMgr, blacklist, logger),
		Registration: NewRegistrationService(repo, cfg.Auth.BcryptCost, logger),
		Report:       NewReportService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
	}
}

package impl

import (
	"context"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type authService struct {
	cfg      *config.Config
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
}

// NewAuthService creates a new auth service instance.
func NewAuthService(cfg *config.Config, hasher service.PasswordHasher, tokenSvc service.TokenService) usecase.AuthUsecase {
	return &authService{
		cfg:      cfg,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

// Login checks the operator password against the configured bcrypt hash and
// issues an access token.
func (s *authService) Login(ctx context.Context, password string) (string, time.Duration, error) {
	if s.cfg.Admin == nil || s.cfg.Admin.PasswordHash == "" {
		return "", 0, domainerrors.ErrAdminDisabled
	}

	if !s.hasher.Check(password, s.cfg.Admin.PasswordHash) {
		return "", 0, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.GenerateToken()
	if err != nil {
		return "", 0, errors.Wrap(err, "generate operator token failed")
	}

	return token, s.tokenSvc.AccessTokenDuration(), nil
}

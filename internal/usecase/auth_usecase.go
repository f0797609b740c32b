package usecase

import (
	"context"
	"time"
)

// AuthUsecase handles the single-operator admin login.
type AuthUsecase interface {
	// Login checks the operator password and issues an access token.
	Login(ctx context.Context, password string) (token string, expiresIn time.Duration, err error)
}

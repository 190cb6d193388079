package services

import (
	"context"

	"github.com/sbilibin2017/mock-register-server/internal/models"
)

// Canned values returned by every successful registration.
const (
	RegistrationMessage = "註冊成功 (Python測試服務器)"
	RegistrationToken   = "test_token_12345"
	RegistrationUserID  = "test_user_id"
)

// RegistrationService answers registration requests with a canned response.
// Nothing is persisted.
type RegistrationService struct{}

// NewRegistrationService creates a new RegistrationService instance.
func NewRegistrationService() *RegistrationService {
	return &RegistrationService{}
}

// Register echoes email and nickname back inside the canned response.
func (svc *RegistrationService) Register(ctx context.Context, email, nickname *string) (*models.RegistrationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &models.RegistrationResponse{
		Message: RegistrationMessage,
		Token:   RegistrationToken,
		User: models.RegisteredUser{
			ID:       RegistrationUserID,
			Email:    email,
			Nickname: nickname,
		},
	}, nil
}

package auth

import (
	"context"

	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
}

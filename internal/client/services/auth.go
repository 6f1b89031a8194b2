package services

import (
	"context"
	"fmt"

	"github.com/daycast-app/daycast/internal/client/api"
	"github.com/daycast-app/daycast/internal/client/session"
)

// AuthService exchanges credentials for a bearer token and keeps the
// session in step.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Session
}

func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{client: client, session: sess}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.session.Establish(ctx, resp.Token, resp.Username); err != nil {
		return fmt.Errorf("establishing session: %w", err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, username, password string) error {
	resp, err := a.client.Register(ctx, username, password)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := a.session.Establish(ctx, resp.Token, resp.Username); err != nil {
		return fmt.Errorf("establishing session: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Teardown(ctx)
}

// Package session holds the client identity: the stable anonymous client
// id, and the bearer token plus username once the user has logged in.
//
// The session is an explicit, injectable object persisted in the local
// metadata store, so tests can run several independent sessions side by
// side instead of sharing ambient global state.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/daycast-app/daycast/internal/client/repositories/metadata"
)

const (
	keyClientID = "client_id"
	keyToken    = "token"
	keyUsername = "username"
)

// now is a test seam for expiry checks.
var now = time.Now

type Session struct {
	repo metadata.Repository

	clientID string
	token    string
	username string
}

// Restore loads session state from the metadata repository. A client id is
// generated and persisted on first run; token and username are optional.
func Restore(ctx context.Context, repo metadata.Repository) (*Session, error) {
	s := &Session{repo: repo}

	id, err := repo.Get(ctx, keyClientID)
	if err != nil {
		return nil, fmt.Errorf("restoring client id: %w", err)
	}
	if len(id) == 0 {
		id = []byte(uuid.NewString())
		if err := repo.Set(ctx, keyClientID, id); err != nil {
			return nil, fmt.Errorf("persisting client id: %w", err)
		}
	}
	s.clientID = string(id)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, fmt.Errorf("restoring token: %w", err)
	}
	s.token = string(token)

	username, err := repo.Get(ctx, keyUsername)
	if err != nil {
		return nil, fmt.Errorf("restoring username: %w", err)
	}
	s.username = string(username)

	return s, nil
}

func (s *Session) ClientID() string { return s.clientID }
func (s *Session) Token() string    { return s.token }
func (s *Session) Username() string { return s.username }

// Authenticated reports whether a usable token is present. A token whose
// exp claim has passed counts as absent.
func (s *Session) Authenticated() bool {
	return s.token != "" && !s.expired()
}

// expired inspects the token's exp claim without verifying the signature;
// verification is the server's job, the client only wants to avoid sending
// requests it knows will bounce. Opaque or claimless tokens never count
// as expired.
func (s *Session) expired() bool {
	token, _, err := jwt.NewParser().ParseUnverified(s.token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now())
}

// Establish stores the token and username after a successful login or
// registration.
func (s *Session) Establish(ctx context.Context, token, username string) error {
	if err := s.repo.Set(ctx, keyToken, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	if err := s.repo.Set(ctx, keyUsername, []byte(username)); err != nil {
		return fmt.Errorf("persisting username: %w", err)
	}
	s.token = token
	s.username = username
	return nil
}

// Teardown drops the authenticated identity while keeping the client id.
// Used on logout and whenever the server answers 401.
func (s *Session) Teardown(ctx context.Context) error {
	if err := s.repo.Delete(ctx, keyToken); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	if err := s.repo.Delete(ctx, keyUsername); err != nil {
		return fmt.Errorf("clearing username: %w", err)
	}
	s.token = ""
	s.username = ""
	return nil
}

// Package api contains the client for the DayCast REST API (/api/v1).
//
// The Client interface is what the service layer programs against; the
// HTTP implementation lives in http.go. All calls carry an anonymous
// client identifier header and, once authenticated, a bearer token.
package api

import (
	"context"

	"github.com/daycast-app/daycast/internal/client/models"
)

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Client is the remote DayCast API surface consumed by the core.
//
// Every method maps a 401 response to ErrUnauthorized and transport
// failures to ErrUnavailable; other non-2xx responses surface the server's
// error string. Nothing is retried automatically.
type Client interface {
	// Auth.
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	Register(ctx context.Context, username, password string) (*AuthResponse, error)

	// Day aggregate and history.
	Day(ctx context.Context, date string) (*models.Day, error)
	Days(ctx context.Context, search, cursor string) (*models.DayList, error)
	ExportDay(ctx context.Context, date string) (string, error)

	// Input capture and mutation.
	AddInput(ctx context.Context, typ models.InputType, content, date string) (*models.InputItem, error)
	UploadImage(ctx context.Context, filename string, data []byte, date string) (*models.InputItem, error)
	EditInput(ctx context.Context, id, content string) (*models.InputItem, error)
	SetImportance(ctx context.Context, id string, importance *int) (*models.InputItem, error)
	SetIncludeInGeneration(ctx context.Context, id string, include bool) (*models.InputItem, error)
	ClearInput(ctx context.Context, id string) error
	ClearDay(ctx context.Context, date string) error

	// Generation. Both calls return one complete Generation snapshot with
	// a result for every active channel; passing no channels to Regenerate
	// regenerates all of them.
	Generate(ctx context.Context, date string) (*models.Generation, error)
	Regenerate(ctx context.Context, generationID string, channels []string) (*models.Generation, error)

	// Publishing. Status maps carry a post id per content id, nil when the
	// content has never been published (or was unpublished).
	PublishResult(ctx context.Context, resultID string) (*models.PublishedPost, error)
	PublishInput(ctx context.Context, inputItemID string) (*models.PublishedPost, error)
	Unpublish(ctx context.Context, postID string) error
	ResultStatuses(ctx context.Context, resultIDs []string) (map[string]*string, error)
	InputStatuses(ctx context.Context, inputIDs []string) (map[string]*string, error)

	// Settings.
	ChannelSettings(ctx context.Context) ([]models.ChannelSetting, error)
	SaveChannelSettings(ctx context.Context, settings []models.ChannelSetting) error
	GenerationSettings(ctx context.Context) (*models.GenerationSettings, error)
	SaveGenerationSettings(ctx context.Context, settings models.GenerationSettings) error
}

// Credentials supplies the per-request identity headers. The session
// object implements it; tests can provide a static stub.
type Credentials interface {
	// ClientID returns the stable anonymous client identifier.
	ClientID() string
	// Token returns the bearer token, or "" before authentication.
	Token() string
}

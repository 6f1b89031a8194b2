package services

import (
	"context"
	"time"

	"github.com/daycast-app/daycast/internal/client/api"
	"github.com/daycast-app/daycast/internal/client/autosave"
	"github.com/daycast-app/daycast/internal/client/models"
	"github.com/daycast-app/daycast/internal/logging"
)

// SettingsService owns the two independent autosave controllers: one for
// per-channel settings, one for the generation settings singleton. They
// share neither a timer nor a debounce window.
type SettingsService struct {
	Channels   *autosave.Controller[[]models.ChannelSetting]
	Generation *autosave.Controller[models.GenerationSettings]
}

// NewSettingsService wires both controllers against the API client.
// Init must be called before edits are expected to persist.
func NewSettingsService(client api.Client, log logging.Logger, quietPeriod, savedWindow time.Duration) *SettingsService {
	channels := autosave.New(autosave.Config[[]models.ChannelSetting]{
		Load: func(ctx context.Context) ([]models.ChannelSetting, error) {
			settings, err := client.ChannelSettings(ctx)
			if err != nil {
				return models.DefaultChannelSettings(), err
			}
			if len(settings) == 0 {
				// Nothing stored server-side yet: start from local defaults.
				return models.DefaultChannelSettings(), nil
			}
			return merge(models.DefaultChannelSettings(), settings), nil
		},
		Save: func(ctx context.Context, settings []models.ChannelSetting) error {
			return client.SaveChannelSettings(ctx, settings)
		},
		QuietPeriod: quietPeriod,
		SavedWindow: savedWindow,
		Logger:      log.With("settings", "channels"),
	})

	generation := autosave.New(autosave.Config[models.GenerationSettings]{
		Load: func(ctx context.Context) (models.GenerationSettings, error) {
			settings, err := client.GenerationSettings(ctx)
			if err != nil {
				return models.GenerationSettings{}, err
			}
			return *settings, nil
		},
		Save: func(ctx context.Context, settings models.GenerationSettings) error {
			return client.SaveGenerationSettings(ctx, settings)
		},
		QuietPeriod: quietPeriod,
		SavedWindow: savedWindow,
		Logger:      log.With("settings", "generation"),
	})

	return &SettingsService{Channels: channels, Generation: generation}
}

// Init loads both settings values. Each controller swallows its own load
// failure and unblocks saving regardless.
func (s *SettingsService) Init(ctx context.Context) {
	s.Channels.Init(ctx)
	s.Generation.Init(ctx)
}

// Close cancels any pending autosaves on teardown so nothing fires after
// the owning session is gone.
func (s *SettingsService) Close() {
	s.Channels.Close()
	s.Generation.Close()
}

// UpdateChannel applies fn to the setting for channelID, debouncing the
// resulting save. Unknown channel ids are ignored.
func (s *SettingsService) UpdateChannel(channelID string, fn func(models.ChannelSetting) models.ChannelSetting) {
	s.Channels.Update(func(settings []models.ChannelSetting) []models.ChannelSetting {
		next := make([]models.ChannelSetting, len(settings))
		copy(next, settings)
		for i, cs := range next {
			if cs.ChannelID == channelID {
				next[i] = fn(cs)
			}
		}
		return next
	})
}

// merge overlays server-side settings onto the local defaults, keyed by
// channel id, so channels added client-side keep working with defaults.
func merge(defaults, stored []models.ChannelSetting) []models.ChannelSetting {
	byID := make(map[string]models.ChannelSetting, len(stored))
	for _, cs := range stored {
		byID[cs.ChannelID] = cs
	}
	out := make([]models.ChannelSetting, 0, len(defaults))
	for _, def := range defaults {
		if cs, ok := byID[def.ChannelID]; ok {
			if cs.DefaultLength == "" {
				cs.DefaultLength = def.DefaultLength
			}
			out = append(out, cs)
			delete(byID, def.ChannelID)
			continue
		}
		out = append(out, def)
	}
	// Channels the server knows but the client does not: keep them at the end.
	for _, cs := range stored {
		if _, ok := byID[cs.ChannelID]; ok {
			out = append(out, cs)
		}
	}
	return out
}

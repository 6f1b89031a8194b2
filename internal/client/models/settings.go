package models

// ChannelSetting is the per-channel configuration, one per known channel id.
type ChannelSetting struct {
	ChannelID       string `json:"channel_id"`
	IsActive        bool   `json:"is_active"`
	DefaultStyle    string `json:"default_style"`
	DefaultLanguage string `json:"default_language"`
	DefaultLength   string `json:"default_length"`
}

// GenerationSettings is the per-user generation configuration singleton.
type GenerationSettings struct {
	CustomInstruction        string `json:"custom_instruction"`
	SeparateBusinessPersonal bool   `json:"separate_business_personal"`
}

// KnownChannels lists the publishing destinations the client knows how to
// render, in display order.
var KnownChannels = []string{"blog", "diary", "tg_personal", "tg_public", "twitter"}

// DefaultChannelSettings builds the local defaults used before (or in the
// absence of) server-side settings: every known channel active with a
// casual medium-length Russian post.
func DefaultChannelSettings() []ChannelSetting {
	settings := make([]ChannelSetting, 0, len(KnownChannels))
	for _, id := range KnownChannels {
		settings = append(settings, ChannelSetting{
			ChannelID:       id,
			IsActive:        true,
			DefaultStyle:    "casual",
			DefaultLanguage: "ru",
			DefaultLength:   "medium",
		})
	}
	return settings
}

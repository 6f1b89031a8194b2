package models

import "time"

// GenerationResult is one channel's post text within a generation.
// It is the target of publish/unpublish actions.
type GenerationResult struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Style     string `json:"style"`
	Language  string `json:"language"`
	Text      string `json:"text"`
	Model     string `json:"model"`
}

// Generation is one complete, immutable attempt at producing channel posts
// from a day's inputs. Regeneration always produces a new Generation;
// existing ones are never patched.
type Generation struct {
	ID        string             `json:"id"`
	Date      string             `json:"date"`
	Results   []GenerationResult `json:"results"`
	CreatedAt time.Time          `json:"created_at"`
}

// Result returns the result for the given channel id, if present.
func (g *Generation) Result(channelID string) (GenerationResult, bool) {
	for _, r := range g.Results {
		if r.ChannelID == channelID {
			return r, true
		}
	}
	return GenerationResult{}, false
}

// ResultIDs lists the result ids in channel order, the shape the publish
// status endpoint expects.
func (g *Generation) ResultIDs() []string {
	ids := make([]string, 0, len(g.Results))
	for _, r := range g.Results {
		ids = append(ids, r.ID)
	}
	return ids
}

// PublishedPost is the server's record of a published post.
type PublishedPost struct {
	ID                string    `json:"id"`
	Slug              string    `json:"slug"`
	ChannelID         string    `json:"channel_id"`
	Style             string    `json:"style"`
	Language          string    `json:"language"`
	Text              string    `json:"text"`
	Date              string    `json:"date"`
	PublishedAt       time.Time `json:"published_at"`
	InputItemsPreview []string  `json:"input_items_preview"`
}

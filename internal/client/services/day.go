// Package services contains the application services of the DayCast
// client: day aggregate loading and input mutation, generation, settings
// autosave, and authentication.
package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/daycast-app/daycast/internal/client/api"
	"github.com/daycast-app/daycast/internal/client/models"
	"github.com/daycast-app/daycast/internal/client/repositories/days"
	"github.com/daycast-app/daycast/internal/logging"
)

// urlRe decides whether a captured line is a link or plain text.
var urlRe = regexp.MustCompile(`(?i)^https?://.+`)

// DayService loads day aggregates and performs the user-initiated
// mutations on inputs and generations.
//
// Load results are cached locally on success so history can be browsed
// offline; the cache is read through CachedDay and never consulted for
// writes.
type DayService interface {
	Load(ctx context.Context, date string) (*models.Day, error)
	CachedDay(ctx context.Context, date string) (*models.Day, error)
	Days(ctx context.Context, search, cursor string) (*models.DayList, error)
	Export(ctx context.Context, date string) (string, error)

	AddText(ctx context.Context, date, content string) (*models.InputItem, error)
	UploadImage(ctx context.Context, filename string, data []byte, date string) (*models.InputItem, error)
	EditInput(ctx context.Context, id, content string) (*models.InputItem, error)
	SetImportance(ctx context.Context, id string, importance *int) (*models.InputItem, error)
	SetIncludeInGeneration(ctx context.Context, id string, include bool) (*models.InputItem, error)
	ClearInput(ctx context.Context, id string) error
	ClearDay(ctx context.Context, date string) error

	Generate(ctx context.Context, date string) (*models.Generation, error)
	Regenerate(ctx context.Context, generationID string, channels []string) (*models.Generation, error)
}

type dayService struct {
	client api.Client
	cache  days.Repository
	log    logging.Logger
}

func NewDayService(client api.Client, cache days.Repository, log logging.Logger) DayService {
	return &dayService{client: client, cache: cache, log: log}
}

// Load fetches the aggregate for a date. Caching is best-effort: a cache
// write failure is logged and the fresh aggregate is still returned.
func (s *dayService) Load(ctx context.Context, date string) (*models.Day, error) {
	day, err := s.client.Day(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading day %s: %w", date, err)
	}

	if err := s.cache.Put(ctx, day, time.Now()); err != nil {
		s.log.Warn(ctx, "failed to cache day", "date", date, "error", err)
	}
	return day, nil
}

// CachedDay returns the locally cached aggregate, or nil when the date
// was never fetched.
func (s *dayService) CachedDay(ctx context.Context, date string) (*models.Day, error) {
	return s.cache.Get(ctx, date)
}

func (s *dayService) Days(ctx context.Context, search, cursor string) (*models.DayList, error) {
	list, err := s.client.Days(ctx, search, cursor)
	if err != nil {
		return nil, fmt.Errorf("listing days: %w", err)
	}
	return list, nil
}

func (s *dayService) Export(ctx context.Context, date string) (string, error) {
	text, err := s.client.ExportDay(ctx, date)
	if err != nil {
		return "", fmt.Errorf("exporting day %s: %w", date, err)
	}
	return text, nil
}

// AddText submits one captured line, classifying it as a url when it
// looks like one.
func (s *dayService) AddText(ctx context.Context, date, content string) (*models.InputItem, error) {
	typ := models.InputText
	if urlRe.MatchString(content) {
		typ = models.InputURL
	}
	item, err := s.client.AddInput(ctx, typ, content, date)
	if err != nil {
		return nil, fmt.Errorf("adding input: %w", err)
	}
	return item, nil
}

func (s *dayService) UploadImage(ctx context.Context, filename string, data []byte, date string) (*models.InputItem, error) {
	item, err := s.client.UploadImage(ctx, filename, data, date)
	if err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}
	return item, nil
}

// EditInput changes an item's content; the server records an Edit with
// the prior content and returns the updated item carrying its history.
func (s *dayService) EditInput(ctx context.Context, id, content string) (*models.InputItem, error) {
	item, err := s.client.EditInput(ctx, id, content)
	if err != nil {
		return nil, fmt.Errorf("editing input: %w", err)
	}
	return item, nil
}

func (s *dayService) SetImportance(ctx context.Context, id string, importance *int) (*models.InputItem, error) {
	item, err := s.client.SetImportance(ctx, id, importance)
	if err != nil {
		return nil, fmt.Errorf("setting importance: %w", err)
	}
	return item, nil
}

func (s *dayService) SetIncludeInGeneration(ctx context.Context, id string, include bool) (*models.InputItem, error) {
	item, err := s.client.SetIncludeInGeneration(ctx, id, include)
	if err != nil {
		return nil, fmt.Errorf("toggling generation inclusion: %w", err)
	}
	return item, nil
}

func (s *dayService) ClearInput(ctx context.Context, id string) error {
	if err := s.client.ClearInput(ctx, id); err != nil {
		return fmt.Errorf("clearing input: %w", err)
	}
	return nil
}

func (s *dayService) ClearDay(ctx context.Context, date string) error {
	if err := s.client.ClearDay(ctx, date); err != nil {
		return fmt.Errorf("clearing day: %w", err)
	}
	return nil
}

func (s *dayService) Generate(ctx context.Context, date string) (*models.Generation, error) {
	gen, err := s.client.Generate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("generating: %w", err)
	}
	return gen, nil
}

func (s *dayService) Regenerate(ctx context.Context, generationID string, channels []string) (*models.Generation, error) {
	gen, err := s.client.Regenerate(ctx, generationID, channels)
	if err != nil {
		return nil, fmt.Errorf("regenerating: %w", err)
	}
	return gen, nil
}

// Package cli is the interactive DayCast client: a REPL over the day feed,
// generation history, publishing and settings.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/daycast-app/daycast/internal/client/api"
	"github.com/daycast-app/daycast/internal/client/config"
	"github.com/daycast-app/daycast/internal/client/models"
	"github.com/daycast-app/daycast/internal/client/publish"
	"github.com/daycast-app/daycast/internal/client/services"
	"github.com/daycast-app/daycast/internal/client/session"
	"github.com/daycast-app/daycast/internal/client/storage"
	"github.com/daycast-app/daycast/internal/client/versionlog"
	"github.com/daycast-app/daycast/internal/logging"
)

// today is a test seam for the current date.
var today = func() string { return time.Now().Format("2006-01-02") }

type App struct {
	config  *config.Config
	log     logging.Logger
	repos   *storage.Repositories
	session *session.Session

	auth     services.AuthService
	days     services.DayService
	settings *services.SettingsService

	// resultPosts and inputPosts track publish state for generation
	// results and raw text inputs respectively.
	resultPosts *publish.Reconciler
	inputPosts  *publish.Reconciler

	// history is the generation version log for the open day.
	history *versionlog.Log

	// date and day are the currently open day aggregate.
	date string
	day  *models.Day

	// histCursor carries pagination state between "history" invocations.
	histCursor string

	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	repos, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening local storage: %w", err)
	}

	sess, err := session.Restore(ctx, repos.Metadata)
	if err != nil {
		_ = repos.DB.Close()
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	client := api.NewHTTPClient(cfg.APIBaseURL, sess, cfg.RequestTimeout)

	return &App{
		config:      cfg,
		log:         log,
		repos:       repos,
		session:     sess,
		auth:        services.NewAuthService(client, sess),
		days:        services.NewDayService(client, repos.Days, log),
		settings:    services.NewSettingsService(client, log, cfg.AutosaveQuietPeriod, cfg.AutosaveSavedWindow),
		resultPosts: publish.ForResults(client),
		inputPosts:  publish.ForInputs(client),
		history:     versionlog.New(),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() {
	a.settings.Close()
	if err := a.repos.DB.Close(); err != nil {
		a.log.Warn(context.Background(), "closing local database", "error", err)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("DayCast CLI (type 'help' for commands)")

	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}
	if a.isLoggedIn() {
		a.settings.Init(ctx)
		_ = a.Feed(ctx, nil)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) getStatus() string {
	s := ""
	if a.session.Username() != "" {
		s = a.session.Username()
	}
	if a.date != "" {
		s = s + " " + a.date
	}
	if n := a.history.Len(); n > 0 {
		s = fmt.Sprintf("%s v%d/%d", s, a.history.Cursor()+1, n)
	}
	return s
}

// report prints err for the user and tears the session down on a 401 so
// the next command prompts a fresh login.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrUnauthorized) {
		printlnFn("Session expired, please log in again.")
		if terr := a.session.Teardown(ctx); terr != nil {
			a.log.Warn(ctx, "tearing down session", "error", terr)
		}
		return err
	}
	printlnFn("Error:", err.Error())
	return err
}

// visibleItems lists the open day's non-cleared items in capture order.
func (a *App) visibleItems() []models.InputItem {
	if a.day == nil {
		return nil
	}
	items := make([]models.InputItem, 0, len(a.day.InputItems))
	for _, item := range a.day.InputItems {
		if !item.Cleared {
			items = append(items, item)
		}
	}
	return items
}

// itemAt resolves a 1-based feed position to an item.
func (a *App) itemAt(pos int) (models.InputItem, bool) {
	items := a.visibleItems()
	if pos < 1 || pos > len(items) {
		return models.InputItem{}, false
	}
	return items[pos-1], true
}

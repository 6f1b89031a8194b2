package cli

import (
	"context"
	"os"

	"github.com/daycast-app/daycast/internal/client/versionlog"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates an account.
// A successful registration logs the user in immediately.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, username, string(password)); err != nil {
		return a.report(ctx, err)
	}

	printlnFn("Success!")
	a.afterLogin(ctx)
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		return a.report(ctx, err)
	}

	printlnFn("Logged in as", a.session.Username())
	a.afterLogin(ctx)
	return nil
}

// afterLogin pulls the settings and today's feed for the fresh session.
func (a *App) afterLogin(ctx context.Context) {
	a.settings.Init(ctx)
	_ = a.Feed(ctx, nil)
}

// Logout drops the token and clears all per-session state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	a.date = ""
	a.day = nil
	a.history = versionlog.New()
	printlnFn("Logged out.")
	return nil
}

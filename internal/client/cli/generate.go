package cli

import (
	"context"
)

// Generate produces a fresh generation from the day's included items and
// appends it to the version history.
func (a *App) Generate(ctx context.Context) error {
	if !a.requireDay() {
		return nil
	}

	gen, err := a.days.Generate(ctx, a.date)
	if err != nil {
		return a.report(ctx, err)
	}

	a.history.Append(*gen)
	a.day.Generations = append(a.day.Generations, *gen)
	a.refreshResultStatuses(ctx)
	a.renderGeneration()
	return nil
}

// Regenerate asks the server for a new complete snapshot based on the
// generation under the cursor. With channel arguments only those channels
// are regenerated; the rest are carried over — either way the result is a
// whole new entry, never a patch of an old one.
func (a *App) Regenerate(ctx context.Context, args []string) error {
	if !a.requireDay() {
		return nil
	}
	current, ok := a.history.Current()
	if !ok {
		printlnFn("Nothing generated yet. Run 'gen' first.")
		return nil
	}

	gen, err := a.days.Regenerate(ctx, current.ID, args)
	if err != nil {
		return a.report(ctx, err)
	}

	a.history.Append(*gen)
	a.day.Generations = append(a.day.Generations, *gen)
	a.refreshResultStatuses(ctx)
	a.renderGeneration()
	return nil
}

// Prev moves the version cursor one step back and re-reads publish state
// for the now-visible results.
func (a *App) Prev(ctx context.Context) error {
	a.history.Navigate(-1)
	a.refreshResultStatuses(ctx)
	a.renderGeneration()
	return nil
}

// Next moves the version cursor one step forward.
func (a *App) Next(ctx context.Context) error {
	a.history.Navigate(+1)
	a.refreshResultStatuses(ctx)
	a.renderGeneration()
	return nil
}

// Show re-renders the generation under the cursor.
func (a *App) Show(ctx context.Context) error {
	a.renderGeneration()
	return nil
}

// Diff renders a word-level comparison of the generation under the cursor
// against the one right before it, channel by channel.
func (a *App) Diff(ctx context.Context) error {
	cursor := a.history.Cursor()
	if cursor < 1 {
		printlnFn("Nothing to compare against.")
		return nil
	}
	a.renderDiff(cursor)
	return nil
}

package cli

import (
	"context"
	"errors"

	"github.com/daycast-app/daycast/internal/client/models"
	"github.com/daycast-app/daycast/internal/client/publish"
)

// Publish publishes one channel's result from the generation under the
// cursor.
func (a *App) Publish(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: pub <channel>")
		return nil
	}
	result, ok := a.currentResult(args[0])
	if !ok {
		return nil
	}

	post, err := a.resultPosts.Publish(ctx, result.ID)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Published to", args[0], "as", post.Slug)
	return nil
}

// Unpublish takes down the published post behind one channel's result.
func (a *App) Unpublish(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: unpub <channel>")
		return nil
	}
	result, ok := a.currentResult(args[0])
	if !ok {
		return nil
	}

	if err := a.resultPosts.Unpublish(ctx, result.ID); err != nil {
		if errors.Is(err, publish.ErrNotPublished) {
			printlnFn("This result is not published.")
			return nil
		}
		return a.report(ctx, err)
	}
	printlnFn("Unpublished", args[0])
	return nil
}

// PublishText publishes a raw text item directly, bypassing generation.
func (a *App) PublishText(ctx context.Context, args []string) error {
	item, ok := a.textItemArg(args, "pubtext")
	if !ok {
		return nil
	}

	post, err := a.inputPosts.Publish(ctx, item.ID)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Published as", post.Slug)
	a.renderDay()
	return nil
}

// UnpublishText takes down a directly published text item.
func (a *App) UnpublishText(ctx context.Context, args []string) error {
	item, ok := a.textItemArg(args, "unpubtext")
	if !ok {
		return nil
	}

	if err := a.inputPosts.Unpublish(ctx, item.ID); err != nil {
		if errors.Is(err, publish.ErrNotPublished) {
			printlnFn("This item is not published.")
			return nil
		}
		return a.report(ctx, err)
	}
	printlnFn("Unpublished.")
	a.renderDay()
	return nil
}

// currentResult resolves a channel id against the generation under the
// cursor, reporting usage problems to the user.
func (a *App) currentResult(channelID string) (models.GenerationResult, bool) {
	gen, ok := a.history.Current()
	if !ok {
		printlnFn("Nothing generated yet. Run 'gen' first.")
		return models.GenerationResult{}, false
	}
	result, ok := gen.Result(channelID)
	if !ok {
		printlnFn("No result for channel:", channelID)
		return models.GenerationResult{}, false
	}
	return result, true
}

// textItemArg resolves a positional argument to a text item.
func (a *App) textItemArg(args []string, cmd string) (models.InputItem, bool) {
	if !a.requireDay() {
		return models.InputItem{}, false
	}
	pos, ok := parsePos(args)
	if !ok {
		printlnFn("Usage: " + cmd + " <n>")
		return models.InputItem{}, false
	}
	item, ok := a.itemAt(pos)
	if !ok {
		printlnFn("No such item:", pos)
		return models.InputItem{}, false
	}
	if item.Type != models.InputText {
		printlnFn("Only text items can be published directly.")
		return models.InputItem{}, false
	}
	return item, true
}

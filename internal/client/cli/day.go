package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/daycast-app/daycast/internal/client/api"
	"github.com/daycast-app/daycast/internal/client/models"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Feed opens a day (today when no date is given), loads its aggregate and
// renders the feed. Falls back to the local cache when the server is
// unreachable.
func (a *App) Feed(ctx context.Context, args []string) error {
	date := today()
	if len(args) > 0 {
		if !dateRe.MatchString(args[0]) {
			printlnFn("Usage: feed [YYYY-MM-DD]")
			return nil
		}
		date = args[0]
	}

	day, err := a.days.Load(ctx, date)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			cached, cerr := a.days.CachedDay(ctx, date)
			if cerr == nil && cached != nil {
				printlnFn("Server unavailable, showing cached copy.")
				a.openDay(ctx, cached)
				a.renderDay()
				return nil
			}
		}
		return a.report(ctx, err)
	}

	a.openDay(ctx, day)
	a.renderDay()
	return nil
}

// openDay replaces the current day state: the aggregate itself, the
// generation history with its cursor on the newest entry, and both publish
// caches for the content now on screen.
func (a *App) openDay(ctx context.Context, day *models.Day) {
	a.date = day.Date
	a.day = day
	a.history.Load(day.Generations)

	a.refreshResultStatuses(ctx)
	a.refreshInputStatuses(ctx)
}

// refreshResultStatuses re-reads publish state for the generation under the
// cursor. Best-effort: a failed refresh keeps the previous cache.
func (a *App) refreshResultStatuses(ctx context.Context) {
	gen, ok := a.history.Current()
	if !ok {
		return
	}
	if err := a.resultPosts.Refresh(ctx, gen.ResultIDs()); err != nil {
		a.log.Warn(ctx, "refreshing result publish status", "error", err)
	}
}

func (a *App) refreshInputStatuses(ctx context.Context) {
	var ids []string
	for _, item := range a.visibleItems() {
		if item.Type == models.InputText {
			ids = append(ids, item.ID)
		}
	}
	if err := a.inputPosts.Refresh(ctx, ids); err != nil {
		a.log.Warn(ctx, "refreshing input publish status", "error", err)
	}
}

// requireDay guards commands that operate on an open day.
func (a *App) requireDay() bool {
	if a.day == nil {
		printlnFn("No day open. Run 'feed' first.")
		return false
	}
	return true
}

// Add captures one line of text; lines that look like links are stored as
// such.
func (a *App) Add(ctx context.Context, args []string) error {
	if !a.requireDay() {
		return nil
	}
	content := strings.Join(args, " ")
	if content == "" {
		text, err := getSimpleText(a.reader, "Enter text", os.Stdout)
		if err != nil {
			return err
		}
		content = text
	}
	if content == "" {
		printlnFn("Usage: add <text>")
		return nil
	}

	item, err := a.days.AddText(ctx, a.date, content)
	if err != nil {
		return a.report(ctx, err)
	}
	a.day.InputItems = append(a.day.InputItems, *item)
	a.renderDay()
	return nil
}

// Photo uploads an image file into the open day.
func (a *App) Photo(ctx context.Context, args []string) error {
	if !a.requireDay() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: photo <path>")
		return nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	item, err := a.days.UploadImage(ctx, filepath.Base(args[0]), data, a.date)
	if err != nil {
		return a.report(ctx, err)
	}
	a.day.InputItems = append(a.day.InputItems, *item)
	a.renderDay()
	return nil
}

// Edit rewrites an item's content; the previous content is kept server-side
// as an edit record.
func (a *App) Edit(ctx context.Context, args []string) error {
	if !a.requireDay() {
		return nil
	}
	pos, ok := parsePos(args)
	if !ok {
		printlnFn("Usage: edit <n>")
		return nil
	}
	item, ok := a.itemAt(pos)
	if !ok {
		printlnFn("No such item:", pos)
		return nil
	}
	if item.Type == models.InputImage {
		printlnFn("Photos cannot be edited.")
		return nil
	}

	printlnFn("Current:", item.Content)
	content, err := getSimpleText(a.reader, "New content", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" || content == item.Content {
		return nil
	}

	updated, err := a.days.EditInput(ctx, item.ID, content)
	if err != nil {
		return a.report(ctx, err)
	}
	a.replaceItem(*updated)
	a.renderDay()
	return nil
}

// Rank sets an item's importance 0–5; "-" clears the rank.
func (a *App) Rank(ctx context.Context, args []string) error {
	if !a.requireDay() {
		return nil
	}
	if len(args) < 2 {
		printlnFn("Usage: rank <n> <0-5|->")
		return nil
	}
	pos, ok := parsePos(args)
	if !ok {
		printlnFn("Usage: rank <n> <0-5|->")
		return nil
	}
	item, ok := a.itemAt(pos)
	if !ok {
		printlnFn("No such item:", pos)
		return nil
	}

	var importance *int
	if args[1] != "-" {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 0 || v > 5 {
			printlnFn("Importance must be 0-5 or '-' to clear.")
			return nil
		}
		importance = &v
	}

	updated, err := a.days.SetImportance(ctx, item.ID, importance)
	if err != nil {
		return a.report(ctx, err)
	}
	a.replaceItem(*updated)
	a.renderDay()
	return nil
}

// Toggle flips whether an item feeds the next generation.
func (a *App) Toggle(ctx context.Context, args []string) error {
	if !a.requireDay() {
		return nil
	}
	if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
		printlnFn("Usage: ai <n> on|off")
		return nil
	}
	pos, ok := parsePos(args)
	if !ok {
		printlnFn("Usage: ai <n> on|off")
		return nil
	}
	item, ok := a.itemAt(pos)
	if !ok {
		printlnFn("No such item:", pos)
		return nil
	}

	updated, err := a.days.SetIncludeInGeneration(ctx, item.ID, args[1] == "on")
	if err != nil {
		return a.report(ctx, err)
	}
	a.replaceItem(*updated)
	a.renderDay()
	return nil
}

// Remove clears one item from the feed. History views still show it.
func (a *App) Remove(ctx context.Context, args []string) error {
	if !a.requireDay() {
		return nil
	}
	pos, ok := parsePos(args)
	if !ok {
		printlnFn("Usage: rm <n>")
		return nil
	}
	item, ok := a.itemAt(pos)
	if !ok {
		printlnFn("No such item:", pos)
		return nil
	}

	if err := a.days.ClearInput(ctx, item.ID); err != nil {
		return a.report(ctx, err)
	}
	item.Cleared = true
	a.replaceItem(item)
	a.renderDay()
	return nil
}

// ClearDay clears every remaining item of the open day.
func (a *App) ClearDay(ctx context.Context) error {
	if !a.requireDay() {
		return nil
	}
	answer, err := getSimpleText(a.reader, "Clear all items for "+a.date+"? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		return nil
	}

	if err := a.days.ClearDay(ctx, a.date); err != nil {
		return a.report(ctx, err)
	}
	for i := range a.day.InputItems {
		a.day.InputItems[i].Cleared = true
	}
	a.renderDay()
	return nil
}

// Export prints the day as plain text the way the server renders it.
func (a *App) Export(ctx context.Context) error {
	if !a.requireDay() {
		return nil
	}
	text, err := a.days.Export(ctx, a.date)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(text)
	return nil
}

// History lists past days, newest first. "history more" continues from the
// previous page; any other argument is a search term.
func (a *App) History(ctx context.Context, args []string) error {
	search := ""
	cursor := ""
	if len(args) > 0 {
		if args[0] == "more" {
			cursor = a.histCursor
		} else {
			search = strings.Join(args, " ")
		}
	}

	list, err := a.days.Days(ctx, search, cursor)
	if err != nil {
		return a.report(ctx, err)
	}

	for _, d := range list.Items {
		printlnFn(formatDaySummary(d))
	}
	if list.Cursor != nil {
		a.histCursor = *list.Cursor
		printlnFn("(more available: 'history more')")
	} else {
		a.histCursor = ""
	}
	return nil
}

// replaceItem swaps the stored copy of an item by id.
func (a *App) replaceItem(item models.InputItem) {
	for i, existing := range a.day.InputItems {
		if existing.ID == item.ID {
			a.day.InputItems[i] = item
			return
		}
	}
}

// parsePos parses the leading 1-based item position argument.
func parsePos(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 {
		return 0, false
	}
	return pos, true
}

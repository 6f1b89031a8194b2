package cli

import (
	"fmt"
	"strings"

	"github.com/daycast-app/daycast/internal/client/diff"
	"github.com/daycast-app/daycast/internal/client/models"
)

// renderDay prints the feed for the open day: position, type marker,
// importance, generation-inclusion and publish state per item.
func (a *App) renderDay() {
	items := a.visibleItems()
	printlnFn(fmt.Sprintf("-- %s: %d item(s) --", a.date, len(items)))
	for i, item := range items {
		printlnFn(formatItem(i+1, item, a.inputPosts.Published(item.ID)))
	}
}

func formatItem(pos int, item models.InputItem, published bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%2d. [%s]", pos, itemMarker(item.Type))
	if item.Importance != nil {
		fmt.Fprintf(&b, " !%d", *item.Importance)
	}
	if !item.IncludeInGeneration {
		b.WriteString(" (ai off)")
	}
	if published {
		b.WriteString(" (published)")
	}
	if len(item.Edits) > 0 {
		fmt.Fprintf(&b, " (%d edits)", len(item.Edits))
	}
	b.WriteString(" ")
	b.WriteString(item.Content)
	return b.String()
}

func itemMarker(typ models.InputType) string {
	switch typ {
	case models.InputURL:
		return "url"
	case models.InputImage:
		return "img"
	default:
		return "txt"
	}
}

// renderGeneration prints the generation under the cursor, one block per
// channel, with publish state per result.
func (a *App) renderGeneration() {
	gen, ok := a.history.Current()
	if !ok {
		printlnFn("Nothing generated yet. Run 'gen' first.")
		return
	}

	printlnFn(fmt.Sprintf("-- version %d/%d (%s) --", a.history.Cursor()+1, a.history.Len(), gen.CreatedAt.Format("15:04:05")))
	for _, r := range gen.Results {
		header := fmt.Sprintf("[%s] %s/%s", r.ChannelID, r.Style, r.Language)
		if a.resultPosts.Published(r.ID) {
			header += " (published)"
		}
		printlnFn(header)
		printlnFn(r.Text)
	}
}

// renderDiff prints a per-channel word diff of version cursor against
// cursor-1.
func (a *App) renderDiff(cursor int) {
	current, _ := a.history.At(cursor)
	previous, _ := a.history.At(cursor - 1)

	printlnFn(fmt.Sprintf("-- changes from version %d to %d --", cursor, cursor+1))
	for _, r := range current.Results {
		old, ok := previous.Result(r.ChannelID)
		if !ok {
			printlnFn(fmt.Sprintf("[%s] (new channel)", r.ChannelID))
			printlnFn(r.Text)
			continue
		}
		printlnFn(fmt.Sprintf("[%s]", r.ChannelID))
		printlnFn(formatDiff(diff.Words(old.Text, r.Text)))
	}
}

// formatDiff renders diff tokens in wdiff style: removals as [-w-],
// additions as {+w+}, unchanged words verbatim.
func formatDiff(tokens []diff.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Op {
		case diff.Removed:
			b.WriteString("[-" + tok.Text + "-]")
		case diff.Added:
			b.WriteString("{+" + tok.Text + "+}")
		default:
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}

func formatDaySummary(d models.DaySummary) string {
	return fmt.Sprintf("%s  %2d item(s), %d generation(s)", d.Date, d.InputCount, d.GenerationCount)
}

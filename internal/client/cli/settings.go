package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/daycast-app/daycast/internal/client/autosave"
	"github.com/daycast-app/daycast/internal/client/models"
)

// Channels shows or edits per-channel settings. Edits are autosaved after a
// short quiet period; the indicator in the listing shows the save state.
//
//	channels                       list settings
//	channels toggle <id>           flip a channel on/off
//	channels style <id> <style>    set default style
//	channels lang <id> <language>  set default language
//	channels len <id> <length>     set default length
func (a *App) Channels(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.renderChannels()
		return nil
	}

	if len(args) < 2 {
		printlnFn("Usage: channels [toggle|style|lang|len] <channel> [value]")
		return nil
	}
	id := args[1]
	if !knownChannel(id) {
		printlnFn("Unknown channel:", id)
		return nil
	}

	switch args[0] {
	case "toggle":
		a.settings.UpdateChannel(id, func(cs models.ChannelSetting) models.ChannelSetting {
			cs.IsActive = !cs.IsActive
			return cs
		})
	case "style", "lang", "len":
		if len(args) < 3 {
			printlnFn("Usage: channels", args[0], "<channel> <value>")
			return nil
		}
		value := args[2]
		a.settings.UpdateChannel(id, func(cs models.ChannelSetting) models.ChannelSetting {
			switch args[0] {
			case "style":
				cs.DefaultStyle = value
			case "lang":
				cs.DefaultLanguage = value
			case "len":
				cs.DefaultLength = value
			}
			return cs
		})
	default:
		printlnFn("Unknown subcommand:", args[0])
		return nil
	}

	a.renderChannels()
	return nil
}

func (a *App) renderChannels() {
	printlnFn("-- channels", saveMarker(a.settings.Channels.Status()), "--")
	for _, cs := range a.settings.Channels.Value() {
		state := "on"
		if !cs.IsActive {
			state = "off"
		}
		printlnFn(fmt.Sprintf("%-12s %-3s  %s/%s/%s", cs.ChannelID, state, cs.DefaultStyle, cs.DefaultLanguage, cs.DefaultLength))
	}
}

// Instruction shows and edits the custom generation instruction.
func (a *App) Instruction(ctx context.Context) error {
	current := a.settings.Generation.Value().CustomInstruction
	if current != "" {
		printlnFn("Current instruction:")
		printlnFn(current)
	}

	text, err := GetMultiline(a.reader, "Enter instruction (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	a.settings.Generation.Update(func(gs models.GenerationSettings) models.GenerationSettings {
		gs.CustomInstruction = text
		return gs
	})
	printlnFn("Instruction updated", saveMarker(a.settings.Generation.Status()))
	return nil
}

// Separate toggles splitting business and personal content into separate
// posts.
func (a *App) Separate(ctx context.Context, args []string) error {
	if len(args) == 0 || (args[0] != "on" && args[0] != "off") {
		printlnFn("Usage: separate on|off")
		return nil
	}
	enabled := args[0] == "on"

	a.settings.Generation.Update(func(gs models.GenerationSettings) models.GenerationSettings {
		gs.SeparateBusinessPersonal = enabled
		return gs
	})
	printlnFn("Separate business/personal:", strings.ToUpper(args[0]), saveMarker(a.settings.Generation.Status()))
	return nil
}

func saveMarker(status autosave.Status) string {
	switch status {
	case autosave.StatusPending, autosave.StatusSaving:
		return "(saving...)"
	case autosave.StatusSaved:
		return "(saved)"
	default:
		return ""
	}
}

func knownChannel(id string) bool {
	for _, known := range models.KnownChannels {
		if known == id {
			return true
		}
	}
	return false
}

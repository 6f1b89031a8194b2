package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Feed(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Photo(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Rank(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	ClearDay(ctx context.Context) error
	Export(ctx context.Context) error
	History(ctx context.Context, args []string) error

	Generate(ctx context.Context) error
	Regenerate(ctx context.Context, args []string) error
	Prev(ctx context.Context) error
	Next(ctx context.Context) error
	Show(ctx context.Context) error
	Diff(ctx context.Context) error

	Publish(ctx context.Context, args []string) error
	Unpublish(ctx context.Context, args []string) error
	PublishText(ctx context.Context, args []string) error
	UnpublishText(ctx context.Context, args []string) error

	Channels(ctx context.Context, args []string) error
	Instruction(ctx context.Context) error
	Separate(ctx context.Context, args []string) error
}

// runREPL starts a read–eval–print loop for the DayCast CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("daycast %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Day:      feed [date], add <text>, photo <path>, edit <n>, rank <n> <0-5|->, ai <n> on|off, rm <n>, clearday, export")
				printlnFn("Generate: gen, regen [channel...], prev, next, show, diff")
				printlnFn("Publish:  pub <channel>, unpub <channel>, pubtext <n>, unpubtext <n>")
				printlnFn("Settings: channels [toggle|style|lang|len ...], instruction, separate on|off")
				printlnFn("Other:    history [search|more], logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "feed", "day":
			_ = a.Feed(ctx, args)

		case "add":
			_ = a.Add(ctx, args)

		case "photo":
			_ = a.Photo(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "rank":
			_ = a.Rank(ctx, args)

		case "ai":
			_ = a.Toggle(ctx, args)

		case "rm":
			_ = a.Remove(ctx, args)

		case "clearday":
			_ = a.ClearDay(ctx)

		case "export":
			_ = a.Export(ctx)

		case "history":
			_ = a.History(ctx, args)

		case "gen":
			_ = a.Generate(ctx)

		case "regen":
			_ = a.Regenerate(ctx, args)

		case "prev":
			_ = a.Prev(ctx)

		case "next":
			_ = a.Next(ctx)

		case "show":
			_ = a.Show(ctx)

		case "diff":
			_ = a.Diff(ctx)

		case "pub":
			_ = a.Publish(ctx, args)

		case "unpub":
			_ = a.Unpublish(ctx, args)

		case "pubtext":
			_ = a.PublishText(ctx, args)

		case "unpubtext":
			_ = a.UnpublishText(ctx, args)

		case "channels":
			_ = a.Channels(ctx, args)

		case "instruction":
			_ = a.Instruction(ctx)

		case "separate":
			_ = a.Separate(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

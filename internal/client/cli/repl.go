package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool

	Packages(ctx context.Context) error
	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	WhoAmI(ctx context.Context) error
	Tab(ctx context.Context, name string) error
	Suspend(ctx context.Context, args []string) error
	Activate(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	CreateUser(ctx context.Context) error
	UpdateEmail(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: packages, signup [package-id], login, exit"
	helpLoggedIn  = "Available commands: whoami, profile, admin, reseller, suspend <id>, activate <id>, " +
		"delete <id>, create-user, update-email, logout, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit" and
// dispatches them to a. Prompts of the commands themselves read from the
// same reader.
//
// Commands that need a session are refused while logged out, and login or
// signup are refused while logged in. Handler errors are not fatal; the
// handlers report them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(prompt(statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "packages":
			_ = a.Packages(ctx)

		case "signup", "login":
			if a.isLoggedIn() {
				printlnFn("You are already logged in. Use 'logout' first.")
				continue
			}
			if cmd == "signup" {
				_ = a.Signup(ctx, args)
			} else {
				_ = a.Login(ctx)
			}

		case "whoami", "profile", "admin", "reseller", "suspend", "activate", "delete",
			"create-user", "update-email", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			dispatchSession(ctx, a, cmd, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func dispatchSession(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "whoami":
		_ = a.WhoAmI(ctx)
	case "profile", "admin", "reseller":
		_ = a.Tab(ctx, cmd)
	case "suspend":
		_ = a.Suspend(ctx, args)
	case "activate":
		_ = a.Activate(ctx, args)
	case "delete":
		_ = a.Delete(ctx, args)
	case "create-user":
		_ = a.CreateUser(ctx)
	case "update-email":
		_ = a.UpdateEmail(ctx)
	case "logout":
		_ = a.Logout(ctx)
	}
}

func prompt(status string) string {
	if status == "" {
		return "tp> "
	}
	return fmt.Sprintf("tp (%s)> ", status)
}

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
	ResetPassword(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Contracts(ctx context.Context) error
	DownloadContract(ctx context.Context, id string) error
	Squares(ctx context.Context) error
	Establishments(ctx context.Context) error
	Appointments(ctx context.Context) error
	RequestAppointment(ctx context.Context) error
	Open(ctx context.Context, route string) error
	WhoAmI(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	ToggleTwoFactor(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate (with a 2FA challenge when enabled)
//	  - reset          — recover a forgotten password
//	  - establishments — browse the public storefront listing
//	  - visit          — request an establishment visit
//	  - exit | quit    — leave the program
//
//	Signed in, additionally:
//	  - dashboard      — show the landing summary
//	  - contracts      — list the tenant's contracts
//	  - pdf <id>       — download a contract document
//	  - squares        — list plazas
//	  - appointments   — list visit requests
//	  - open <route>   — resolve a deep link through the permission guard
//	  - whoami         — show the current identity
//	  - passwd         — change the password
//	  - 2fa            — toggle the second factor
//	  - logout         — end the session
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gescomph> %s > ", statusFn()))
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
				printlnFn("Available commands: dashboard, contracts, pdf <id>, squares, establishments, appointments, visit, open <route>, whoami, passwd, 2fa, logout, exit")
			} else {
				printlnFn("Available commands: register, login, reset, establishments, visit, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "contracts":
			_ = a.Contracts(ctx)

		case "pdf":
			if len(args) == 0 {
				printlnFn("Usage: pdf <id>")
				continue
			}
			_ = a.DownloadContract(ctx, args[0])

		case "squares":
			_ = a.Squares(ctx)

		case "establishments":
			_ = a.Establishments(ctx)

		case "appointments":
			_ = a.Appointments(ctx)

		case "visit":
			_ = a.RequestAppointment(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <route>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "2fa":
			_ = a.ToggleTwoFactor(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

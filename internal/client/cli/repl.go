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
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Announcements(ctx context.Context) error
	ShowAnnouncement(ctx context.Context) error
	PostAnnouncement(ctx context.Context) error
	Departments(ctx context.Context) error
	ShowDepartment(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	Not logged in:
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - announcements   — browse announcements (public)
//	  - show            — show a single announcement
//	  - departments     — list departments
//	  - dept            — show a single department
//	  - exit | quit     — leave the program
//
//	Logged in, additionally:
//	  - profile         — show the alumni profile
//	  - update          — update the alumni profile
//	  - post            — create an announcement
//	  - logout          — log out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, update, (a)nnouncements, show, post, departments, dept, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (a)nnouncements, show, departments, dept, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "a", "announcements":
			_ = a.Announcements(ctx)

		case "show":
			_ = a.ShowAnnouncement(ctx)

		case "post":
			_ = a.PostAnnouncement(ctx)

		case "departments":
			_ = a.Departments(ctx)

		case "dept":
			_ = a.ShowDepartment(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

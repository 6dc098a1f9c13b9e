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
	isAdmin() bool
	Menu(ctx context.Context) error
	Add(ctx context.Context) error
	ShowCart(ctx context.Context) error
	SetQuantity(ctx context.Context) error
	Remove(ctx context.Context) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AdminLogin(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context) error
	AddDish(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Cart commands work with or without a session, matching the storefront's
// browse-first flow; session commands switch with login state, and the
// admin-only commands are gated inside their handlers.
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sd> %s > ", statusFn()))
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
			printlnFn("Shop commands: (m)enu, add, cart, qty, remove, clear, checkout")
			if a.isLoggedIn() {
				if a.isAdmin() {
					printlnFn("Account commands: whoami, users, adddish, logout, exit")
				} else {
					printlnFn("Account commands: whoami, logout, exit")
				}
			} else {
				printlnFn("Account commands: register, login, admin, exit")
			}

		case "m", "menu":
			_ = a.Menu(ctx)

		case "add":
			_ = a.Add(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "qty":
			_ = a.SetQuantity(ctx)

		case "remove":
			_ = a.Remove(ctx)

		case "clear":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "admin":
			_ = a.AdminLogin(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "users":
			_ = a.Users(ctx)

		case "adddish":
			_ = a.AddDish(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Update(ctx context.Context) error
	Avatar(ctx context.Context) error
	Activities(ctx context.Context) error
	Mine(ctx context.Context) error
	Stats(ctx context.Context) error
	AddActivity(ctx context.Context) error
	Plans(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Invite(ctx context.Context) error
	CompanySignup(ctx context.Context) error
	AcceptInvite(ctx context.Context) error
}

// runREPL reads commands from the scanner and dispatches them until EOF or
// "exit"/"quit". Handlers report their own errors to the user; the loop only
// cares about keeping the prompt alive.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Welcome to SportRadar CLI (type 'help' for commands)")

	for {
		fmt.Printf("sr %s> ", statusFn())
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, update, avatar, activities, mine, stats, addactivity, plans, subscribe, invite, company, logout, exit")
			} else {
				printlnFn("Available commands: login, register, accept-invite, activities, plans, exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "me":
			_ = a.Me(ctx)
		case "update":
			_ = a.Update(ctx)
		case "avatar":
			_ = a.Avatar(ctx)
		case "activities":
			_ = a.Activities(ctx)
		case "mine":
			_ = a.Mine(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "addactivity":
			_ = a.AddActivity(ctx)
		case "plans":
			_ = a.Plans(ctx)
		case "subscribe":
			_ = a.Subscribe(ctx)
		case "invite":
			_ = a.Invite(ctx)
		case "company":
			_ = a.CompanySignup(ctx)
		case "accept-invite":
			_ = a.AcceptInvite(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

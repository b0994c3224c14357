package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Overview(ctx context.Context) error
	List(ctx context.Context) error
	New(ctx context.Context) error
	Tenants(ctx context.Context) error
	Open(ctx context.Context, tenant string) error
	CloseTenant(ctx context.Context) error
	Transition(ctx context.Context, action lifecycle.Action, id string) error
	History(ctx context.Context, id string) error
	Chart(ctx context.Context, name string) error
	Copy(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpClient    = "Available commands: overview, (l)ist, new, history <id>, copy <id>, chart [file], tenants, refresh, whoami, logout, exit"
	helpAdmin     = "Available commands: overview, (l)ist, tenants, open <tenant>, close, accept|reject|complete <id>, history <id>, copy <id>, chart [file], register, refresh, whoami, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands other than help, login and exit need a signed-in session. Errors
// returned by handlers are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portal%s> ", statusFn()))
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
			switch {
			case !a.isLoggedIn():
				printlnFn(helpLoggedOut)
			case a.isAdmin():
				printlnFn(helpAdmin)
			default:
				printlnFn(helpClient)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "login":
			report(a.Login(ctx))
			continue
		}

		if !a.isLoggedIn() {
			if isCommand(cmd) {
				printlnFn("Please login first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "logout":
			report(a.Logout(ctx))
		case "register":
			report(a.Register(ctx))
		case "whoami":
			report(a.WhoAmI(ctx))
		case "overview":
			report(a.Overview(ctx))
		case "l", "list":
			report(a.List(ctx))
		case "new":
			report(a.New(ctx))
		case "tenants":
			report(a.Tenants(ctx))
		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <tenant>")
				continue
			}
			report(a.Open(ctx, args[0]))
		case "close":
			report(a.CloseTenant(ctx))
		case "accept", "reject", "complete":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			report(a.Transition(ctx, lifecycle.Action(cmd), args[0]))
		case "history":
			if len(args) == 0 {
				printlnFn("Usage: history <id>")
				continue
			}
			report(a.History(ctx, args[0]))
		case "copy":
			if len(args) == 0 {
				printlnFn("Usage: copy <id>")
				continue
			}
			report(a.Copy(ctx, args[0]))
		case "chart":
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			report(a.Chart(ctx, name))
		case "refresh":
			report(a.Refresh(ctx))
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isCommand(cmd string) bool {
	switch cmd {
	case "logout", "register", "whoami", "overview", "l", "list", "new", "tenants", "open", "close",
		"accept", "reject", "complete", "history", "copy", "chart", "refresh":
		return true
	}
	return false
}

func report(err error) {
	if err != nil {
		printlnFn(formatError(err))
	}
}

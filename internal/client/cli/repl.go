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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, arg string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Refresh(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
}

// runREPL reads commands from scanner and dispatches them to a until EOF or
// "exit"/"quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - (l)ist         show the loaded page
//	  - page N         load page N
//	  - next | prev    load the adjacent page
//	  - refresh        reload the current page
//	  - search [term]  filter the loaded page; no term clears the filter
//	  - edit ID        update first name, last name or email
//	  - delete ID      delete a user
//	  - whoami         show the logged-in identifier
//	  - logout         forget the credential
//
// Handler errors are ignored here; handlers print their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("userdeck %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, page N, next, prev, refresh, search [term], edit ID, delete ID, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in, logout first")
				continue
			}
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "logout", "whoami", "l", "list", "page", "next", "prev", "refresh", "search", "edit", "delete":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			dispatch(ctx, a, cmd, arg, rest(line, cmd))

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd, arg, tail string) {
	switch cmd {
	case "logout":
		_ = a.Logout(ctx)
	case "whoami":
		_ = a.WhoAmI(ctx)
	case "l", "list":
		_ = a.List(ctx)
	case "page":
		_ = a.Page(ctx, arg)
	case "next":
		_ = a.Next(ctx)
	case "prev":
		_ = a.Prev(ctx)
	case "refresh":
		_ = a.Refresh(ctx)
	case "search":
		_ = a.Search(ctx, tail)
	case "edit":
		_ = a.Edit(ctx, arg)
	case "delete":
		_ = a.Delete(ctx, arg)
	}
}

// rest returns what follows cmd on the line, minus the single separating
// space. Inner and trailing spaces are kept.
func rest(line, cmd string) string {
	s := strings.TrimLeft(line, " \t")
	s = strings.TrimPrefix(s, cmd)
	return strings.TrimPrefix(s, " ")
}

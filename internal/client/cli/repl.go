package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Get(ctx context.Context, args []string) error
	Active(ctx context.Context) error
	Older(ctx context.Context, args []string) error
	Passwd(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Restore(ctx context.Context, args []string) error
}

// lineReader yields lines from r. Commands prompt on the same reader, so the
// loop must not buffer ahead of them.
func lineReader(r *bufio.Reader) func() (string, bool) {
	return func() (string, bool) {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return "", false
		}
		return line, true
	}
}

// runREPL reads commands from next until it is exhausted or "exit"/"quit".
//
//	Not logged in:
//	  register, login, exit
//
//	Logged in:
//	  get <login>, active, older <age>, passwd [login],
//	  delete <login> [hard], restore <login>, register, logout, exit
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, next func() (string, bool)) {
	for {
		printlnFn(fmt.Sprintf("um %s > ", statusFn()))
		line, ok := next()
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: get, active, older, passwd, delete, restore, register, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "get":
			err = a.Get(ctx, args)

		case "active":
			err = a.Active(ctx)

		case "older":
			err = a.Older(ctx, args)

		case "passwd":
			err = a.Passwd(ctx, args)

		case "delete":
			err = a.Delete(ctx, args)

		case "restore":
			err = a.Restore(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
	}
}

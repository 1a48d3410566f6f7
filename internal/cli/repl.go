package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the loop dispatches to. App implements
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Passwd(ctx context.Context) error
	UserAdd(ctx context.Context) error
	Clients(ctx context.Context, args []string) error
	Cases(ctx context.Context, args []string) error
	Docs(ctx context.Context, args []string) error
	Acct(ctx context.Context, args []string) error
	Cal(ctx context.Context, args []string) error
	Liq(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = `Commands: login, help, exit`
	helpUser      = `Commands:
  clients list|trash|search <text>|add|edit <id>|del <id>|restore <id>|purge <id>
  cases   list [client]|search <text>|add|edit <id>|status <id> <active|closed|archived>|del <id>
  docs    list [client]|trash|search <text>|upload|del <id>|restore <id>|purge <id>
  cal     list|add|del <id>|upcoming [days]
  passwd, logout, help, exit`
	helpAdmin = `  acct    list [client]|add|del <id>|balance <client>
  liq     list [case]|add|del <id>|total <case>
  useradd`
)

// runREPL reads commands line by line from in and dispatches them to a
// until "exit" or end of input. Handler errors are printed and the loop
// goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "lexdesk %s> ", statusFn())
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				fmt.Fprintln(out, helpUser+"\n"+helpAdmin)
			case a.isLoggedIn():
				fmt.Fprintln(out, helpUser)
			default:
				fmt.Fprintln(out, helpLoggedOut)
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		case "login":
			cmdErr = a.Login(ctx)
		default:
			if !a.isLoggedIn() {
				fmt.Fprintln(out, "Please log in first.")
				continue
			}
			cmdErr = dispatch(ctx, a, cmd, args)
			if cmdErr == errUnknownCommand {
				fmt.Fprintln(out, "Unknown command:", cmd)
				continue
			}
		}
		if cmdErr != nil {
			fmt.Fprintln(out, "error:", userMessage(cmdErr))
		}
	}
}

var errUnknownCommand = errors.New("unknown command")

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "passwd":
		return a.Passwd(ctx)
	case "useradd":
		return a.UserAdd(ctx)
	case "clients":
		return a.Clients(ctx, args)
	case "cases":
		return a.Cases(ctx, args)
	case "docs":
		return a.Docs(ctx, args)
	case "acct":
		return a.Acct(ctx, args)
	case "cal":
		return a.Cal(ctx, args)
	case "liq":
		return a.Liq(ctx, args)
	default:
		return errUnknownCommand
	}
}

// subcommand splits args into a subcommand, defaulting to list.
func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "list", nil
	}
	return args[0], args[1:]
}

func unknownSub(group, sub string) error {
	return fmt.Errorf("unknown %s subcommand %q, see help", group, sub)
}

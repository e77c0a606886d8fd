package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/timereport/internal/client/models"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	isTeacher() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Open(ctx context.Context, ref string) error
	Students(ctx context.Context) error
	Back(ctx context.Context) error
	Submit(ctx context.Context) error
	Delete(ctx context.Context, ref string) error
	Review(ctx context.Context, status models.Status) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpStudent   = "Available commands: (l)ist, open <n>, submit, delete <n>, logout, exit"
	helpTeacher   = "Available commands: students, open <n>, back, accept, reject, pending, (l)ist, logout, exit"
)

// runREPL reads one command per line from reader, dispatches it to a and
// writes prompts and replies to out.
// It returns at end of input or on "exit"/"quit". Handlers report their own
// errors to the user, so the loop ignores them.
//
//	Not logged in:
//	  register, login, help, exit | quit
//
//	Student:
//	  list | l | refresh   reload the own reports
//	  open <n>             show report n
//	  submit               submit a new report
//	  delete <n>           delete report n after confirmation
//	  logout
//
//	Teacher:
//	  students             show the roster
//	  open <n>             open student n, or report n of the open student
//	  back                 return to the roster
//	  accept | reject | pending
//	                       review the open report
//	  list | l | refresh   reload the current list
//	  logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "tr%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		arg := func(usage string) (string, bool) {
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage:", usage)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				fmt.Fprintln(out, helpLoggedOut)
			case a.isTeacher():
				fmt.Fprintln(out, helpTeacher)
			default:
				fmt.Fprintln(out, helpStudent)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list", "refresh":
			_ = a.List(ctx)

		case "open", "student":
			if ref, ok := arg(cmd + " <n>"); ok {
				_ = a.Open(ctx, ref)
			}

		case "students":
			_ = a.Students(ctx)

		case "back":
			_ = a.Back(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "delete":
			if ref, ok := arg("delete <n>"); ok {
				_ = a.Delete(ctx, ref)
			}

		case "accept":
			_ = a.Review(ctx, models.StatusAccepted)

		case "reject":
			_ = a.Review(ctx, models.StatusRejected)

		case "pending":
			_ = a.Review(ctx, models.StatusPending)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

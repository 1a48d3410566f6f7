package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	admin    bool
	failWith error

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Passwd(ctx context.Context) error  { return f.record("passwd", nil) }
func (f *fakeExec) UserAdd(ctx context.Context) error { return f.record("useradd", nil) }
func (f *fakeExec) Clients(ctx context.Context, args []string) error {
	return f.record("clients", args)
}
func (f *fakeExec) Cases(ctx context.Context, args []string) error { return f.record("cases", args) }
func (f *fakeExec) Docs(ctx context.Context, args []string) error  { return f.record("docs", args) }
func (f *fakeExec) Acct(ctx context.Context, args []string) error  { return f.record("acct", args) }
func (f *fakeExec) Cal(ctx context.Context, args []string) error   { return f.record("cal", args) }
func (f *fakeExec) Liq(ctx context.Context, args []string) error   { return f.record("liq", args) }

func runScript(exec *fakeExec, lines ...string) string {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, in, &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(exec,
		"help",
		"clients",
		"login",
		"help",
		"clients search ana maria",
		"cases list 3",
		"docs",
		"cal upcoming 14",
		"acct balance 1",
		"liq total 2",
		"foobar",
		"",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{"login", "clients", "cases", "docs", "cal", "acct", "liq", "logout"}, exec.calls)
	assert.Equal(t, []string{"search", "ana", "maria"}, exec.args[1])
	assert.Equal(t, []string{"list", "3"}, exec.args[2])
	assert.Empty(t, exec.args[3])
	assert.Contains(t, out, helpLoggedOut)
	assert.Contains(t, out, helpUser)
	assert.NotContains(t, out, "useradd\n")
	assert.Contains(t, out, "Please log in first.")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "lexdesk status> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_AdminHelp(t *testing.T) {
	out := runScript(&fakeExec{loggedIn: true, admin: true}, "help", "quit")
	assert.Contains(t, out, helpAdmin)
}

func TestRunREPL_ErrorsArePrintedAndLoopContinues(t *testing.T) {
	exec := &fakeExec{loggedIn: true, failWith: common.ErrForbidden}
	out := runScript(exec, "acct", "liq", "exit")

	assert.Equal(t, []string{"acct", "liq"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out, "error: this command requires the admin role"))
}

func TestRunREPL_EOFEndsLoop(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(exec, "clients list")
	assert.Equal(t, []string{"clients"}, exec.calls, "a last line without newline still runs")
}

func TestSubcommand(t *testing.T) {
	sub, rest := subcommand(nil)
	assert.Equal(t, "list", sub)
	assert.Empty(t, rest)

	sub, rest = subcommand([]string{"del", "4"})
	assert.Equal(t, "del", sub)
	assert.Equal(t, []string{"4"}, rest)

	assert.ErrorContains(t, unknownSub("docs", "zap"), `unknown docs subcommand "zap"`)
}

package awp5

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeCLI writes a shell script standing in for nsdchat and returns a
// configuration pointing at it. The script is invoked as
// `nsdchat -s <connstr> -c <words...>`; the shift drops everything up
// to the command words, so the bodies dispatch on "$*".
func fakeCLI(t *testing.T, body string) Config {
	t.Helper()

	bin := filepath.Join(t.TempDir(), "nsdchat")
	script := "#!/bin/sh\nshift 3\n" + body + "\n"
	if err := os.WriteFile(bin, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	return Config{
		Server:   "p5.test",
		Username: "admin",
		Password: "secret",
		Nsdchat:  bin,
		Timeout:  10 * time.Second,
	}
}

func openFakeCLI(t *testing.T, body string) *Connection {
	t.Helper()

	c, err := Open(fakeCLI(t, body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestOpen(t *testing.T) {
	c := openFakeCLI(t, `
case "$*" in
"srvinfo lexxvers") echo "7.5.2" ;;
esac`)

	if v := c.ServerVersion(); v != "7.5.2" {
		t.Errorf("unexpected server version: %v", v)
	}
	if c.SessionID() == "" {
		t.Error("expected a generated session id")
	}
}

func TestOpenLoginFailure(t *testing.T) {
	cfg := fakeCLI(t, `
case "$*" in
geterror) echo "wrong password for user admin" ;;
esac`)

	_, err := Open(cfg)
	if !errors.Is(err, ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Raw != "wrong password for user admin" {
		t.Errorf("diagnostic not preserved: %v", err)
	}
}

func TestExec(t *testing.T) {
	c := openFakeCLI(t, `
case "$*" in
"srvinfo lexxvers") echo "7.5.2" ;;
"Job 10042 status") echo "completed" ;;
esac`)

	reply, err := c.Exec(NewCmd("Job", "10042", "status"))
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text() != "completed" {
		t.Errorf("does not match: completed %v", reply.Text())
	}
}

func TestExecCommandError(t *testing.T) {
	c := openFakeCLI(t, `
case "$*" in
"srvinfo lexxvers") echo "7.5.2" ;;
geterror) echo "Volume 'LTO99' unknown or not found" ;;
esac`)

	_, err := c.Exec(NewCmd("Volume", "LTO99", "isonline"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected a CommandError, got %v", err)
	}
	if cmdErr.Cmd != "Volume LTO99 isonline" {
		t.Errorf("unexpected command: %v", cmdErr.Cmd)
	}
	if cmdErr.Raw != "Volume 'LTO99' unknown or not found" {
		t.Errorf("unexpected diagnostic: %v", cmdErr.Raw)
	}
}

func TestExecEmptyReply(t *testing.T) {
	c := openFakeCLI(t, `
case "$*" in
"srvinfo lexxvers") echo "7.5.2" ;;
esac`)

	// No output and no server-side diagnostic is a legitimate empty reply
	reply, err := c.Exec(NewCmd("Job", "10042", "warning"))
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Empty() {
		t.Errorf("expected an empty reply, got %q", reply.Text())
	}
}

func TestExecAfterClose(t *testing.T) {
	c := openFakeCLI(t, `
case "$*" in
"srvinfo lexxvers") echo "7.5.2" ;;
esac`)

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	_, err := c.Exec(NewCmd("Job", "names"))
	if !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if !errors.Is(err, ErrConnection) {
		t.Errorf("expected a connection error, got %v", err)
	}
}

func TestExecProcessFailure(t *testing.T) {
	cfg := Config{
		Server:   "p5.test",
		Username: "admin",
		Password: "secret",
		Nsdchat:  filepath.Join(t.TempDir(), "missing"),
		Timeout:  10 * time.Second,
	}
	cfg.applyDefaults()
	c := &Connection{config: cfg}

	_, err := c.Exec(NewCmd("Job", "names"))
	if !errors.Is(err, ErrConnection) {
		t.Errorf("expected ErrConnection, got %v", err)
	}
}

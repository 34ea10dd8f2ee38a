package awp5

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var connLog = logrus.WithFields(logrus.Fields{"source": "connection"})

// The original client probes with a short timeout so that an unreachable
// server fails fast, whatever the per-command timeout is.
const openProbeTimeout = 5 * time.Second

func newSessionID() string {
	return "awp5_" + uuid.NewString()
}

// Connection is one authenticated CLI session against a P5 server.
// Every command funnels through Exec, one at a time; commands issued on
// the same Connection share server-side session state because they all
// carry the same session id.
type Connection struct {
	config Config

	mu     sync.Mutex
	closed bool

	serverVersion string
}

// Open validates the configuration and probes the server with
// `srvinfo lexxvers`. An unreachable server and rejected credentials are
// indistinguishable at the CLI level; both fail with ErrAuth.
func Open(config Config) (*Connection, error) {
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Connection{config: config}

	ctx, cancel := context.WithTimeout(context.Background(), openProbeTimeout)
	defer cancel()

	reply, err := c.ExecContext(ctx, NewCmd("srvinfo", "lexxvers"))
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return nil, &CommandError{Cmd: cmdErr.Cmd, Raw: cmdErr.Raw, Err: ErrAuth}
		}
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	c.serverVersion = reply.Text()
	return c, nil
}

// Exec runs one command and returns its reply.
func (c *Connection) Exec(cmd Cmd) (Reply, error) {
	return c.ExecContext(context.Background(), cmd)
}

// ExecContext is Exec with a caller-supplied context; the configured
// per-command timeout still applies on top of it.
func (c *Connection) ExecContext(ctx context.Context, cmd Cmd) (Reply, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Reply{}, ErrClosed
	}
	return c.exec(ctx, cmd)
}

// exec interprets one CLI exchange. nsdchat reports failures as an empty
// result and keeps the diagnostic server-side; geterror retrieves and
// clears it. An empty result with an empty diagnostic is a legitimate
// empty reply.
func (c *Connection) exec(ctx context.Context, cmd Cmd) (Reply, error) {
	out, errOut, err := c.run(ctx, cmd.Words()...)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// The process could not run at all (bad binary, timeout); the
		// session cannot be asked for a diagnostic either.
		return Reply{}, &CommandError{Cmd: cmd.String(), Raw: strings.TrimSpace(errOut), Err: fmt.Errorf("%w: %v", ErrConnection, err)}
	}

	if trimmed := strings.TrimSpace(out); trimmed != "" {
		return Reply{raw: trimmed}, nil
	}

	diag, _, derr := c.run(ctx, "geterror")
	diag = strings.TrimSpace(diag)

	switch {
	case diag != "":
		return Reply{}, &CommandError{Cmd: cmd.String(), Raw: diag, Err: classifyDiagnostic(diag)}
	case err != nil:
		return Reply{}, &CommandError{Cmd: cmd.String(), Raw: strings.TrimSpace(errOut), Err: ErrConnection}
	case derr != nil:
		return Reply{}, &CommandError{Cmd: cmd.String(), Err: fmt.Errorf("%w: %v", ErrConnection, derr)}
	}

	return Reply{}, nil
}

// run starts one nsdchat process for the given command words and
// captures its output. The connection string carries the credentials, so
// only the command words are logged.
func (c *Connection) run(ctx context.Context, words ...string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	args := append(c.config.nsdchatCommand(), "-s", c.config.connectionString(), "-c")
	args = append(args, words...)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	connLog.Debugf("running: nsdchat -c %s", strings.Join(words, " "))
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		err = context.DeadlineExceeded
	}

	return stdout.String(), stderr.String(), err
}

// Close marks the connection unusable. There is no session teardown
// command; the server expires idle CLI sessions on its own, so Close
// never fails and closing twice is a no-op.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return nil
}

// SessionID returns the server-side session name commands run under.
func (c *Connection) SessionID() string {
	return c.config.SessionID
}

// ServerVersion returns the application version captured by the Open
// probe, e.g. "7.5.2".
func (c *Connection) ServerVersion() string {
	return c.serverVersion
}

func (c *Connection) String() string {
	return fmt.Sprintf("%s@%s:%d", c.config.Username, c.config.Server, c.config.Port)
}

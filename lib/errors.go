package awp5

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConnection covers every failure to reach the server: the nsdchat
	// process could not be started, timed out, or died without a reply.
	ErrConnection = errors.New("connection error")

	// ErrClosed is returned by Exec after Close.
	ErrClosed = fmt.Errorf("%w: connection is closed", ErrConnection)

	// ErrAuth is returned by Open when the server cannot be reached or
	// rejects the credentials.
	ErrAuth = fmt.Errorf("%w: login failed", ErrConnection)

	// ErrNotFound means the addressed resource does not exist on the server.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidArg means the server rejected an operation argument.
	ErrInvalidArg = errors.New("invalid argument")

	// ErrCommand is the kind for server failures that fit none of the
	// above; the CommandError diagnostic carries the details.
	ErrCommand = errors.New("command failed")
)

// Failure modes of the Backup2Go configure calls ServerConfigure and
// WorkstationConfigure, reported by the CLI as negative numbers in
// place of the new resource name.
var (
	ErrPeerUnreachable = errors.New("network connection problem")
	ErrPeerCredentials = errors.New("wrong user name or password")
	ErrPeerTemplate    = errors.New("template disabled or not found")
)

// CommandError is returned when a single CLI command fails. Raw holds the
// unedited diagnostic obtained from the server via geterror (empty when
// the process itself failed), Err the error kind for errors.Is.
type CommandError struct {
	Cmd string
	Raw string
	Err error
}

func (e *CommandError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("%s: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Cmd, e.Err, e.Raw)
}

func (e *CommandError) Unwrap() error { return e.Err }

var (
	notFoundMarkers = []string{
		"no such",
		"not found",
		"does not exist",
		"doesn't exist",
		"not known",
		"unknown",
	}
	invalidArgMarkers = []string{
		"wrong # args",
		"wrong number of args",
		"invalid",
		"bad parameter",
		"usage:",
		"expected",
	}
)

// classifyDiagnostic maps a geterror message onto an error kind. The CLI
// reports errors as free text, so this is a keyword match on the phrases
// the server actually emits.
func classifyDiagnostic(diag string) error {
	d := strings.ToLower(diag)
	for _, m := range notFoundMarkers {
		if strings.Contains(d, m) {
			return ErrNotFound
		}
	}
	for _, m := range invalidArgMarkers {
		if strings.Contains(d, m) {
			return ErrInvalidArg
		}
	}
	return ErrCommand
}

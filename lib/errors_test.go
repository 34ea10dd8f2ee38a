package awp5

import (
	"errors"
	"testing"
)

type classifyDiagnosticTest struct {
	diag   string
	result error
}

func TestClassifyDiagnostic(t *testing.T) {
	tests := []classifyDiagnosticTest{
		{diag: "Volume 'LTO99' unknown or not found", result: ErrNotFound},
		{diag: "no such client: workstation-7", result: ErrNotFound},
		{diag: "resource does not exist", result: ErrNotFound},
		{diag: "wrong # args: should be \"Job name status\"", result: ErrInvalidArg},
		{diag: "invalid port number", result: ErrInvalidArg},
		{diag: "usage: Volume <name> label <pool>", result: ErrInvalidArg},
		{diag: "device busy", result: ErrCommand},
		{diag: "internal failure in module lexxsrv", result: ErrCommand},
	}

	for _, test := range tests {
		result := classifyDiagnostic(test.diag)
		if result != test.result {
			t.Errorf("does not match: %v %v (from %q)", test.result, result, test.diag)
		}
	}
}

func TestCommandError(t *testing.T) {
	err := &CommandError{Cmd: "Volume LTO99 isonline", Raw: "Volume 'LTO99' unknown or not found", Err: ErrNotFound}

	if !errors.Is(err, ErrNotFound) {
		t.Error("should unwrap to ErrNotFound")
	}
	if errors.Is(err, ErrConnection) {
		t.Error("should not match ErrConnection")
	}

	expected := "Volume LTO99 isonline: resource not found: Volume 'LTO99' unknown or not found"
	if err.Error() != expected {
		t.Errorf("does not match: %v %v", expected, err.Error())
	}

	bare := &CommandError{Cmd: "geterror", Err: ErrConnection}
	expected = "geterror: connection error"
	if bare.Error() != expected {
		t.Errorf("does not match: %v %v", expected, bare.Error())
	}
}

func TestErrorKinds(t *testing.T) {
	// ErrClosed and ErrAuth are connection errors
	if !errors.Is(ErrClosed, ErrConnection) {
		t.Error("ErrClosed should match ErrConnection")
	}
	if !errors.Is(ErrAuth, ErrConnection) {
		t.Error("ErrAuth should match ErrConnection")
	}
	if errors.Is(ErrNotFound, ErrConnection) {
		t.Error("ErrNotFound should not match ErrConnection")
	}
}

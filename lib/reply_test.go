package awp5

import (
	"reflect"
	"testing"
	"time"
)

func TestReplyNames(t *testing.T) {
	tests := []struct {
		raw    string
		result []string
	}{
		{raw: "10001 10002 10003", result: []string{"10001", "10002", "10003"}},
		{raw: "LTO01", result: []string{"LTO01"}},
		{raw: "<empty>", result: []string{}},
		{raw: "unknown", result: []string{}},
		{raw: "10001 <empty> 10002", result: []string{"10001", "10002"}},
		{raw: "", result: []string{}},
	}

	for _, test := range tests {
		result := Reply{raw: test.raw}.Names()
		if !reflect.DeepEqual(result, test.result) {
			t.Errorf("does not match: %v %v (from %q)", test.result, result, test.raw)
		}
	}
}

func TestReplyPaths(t *testing.T) {
	tests := []struct {
		raw    string
		result []string
	}{
		{raw: "/data /home", result: []string{"/data", "/home"}},
		{raw: "{/Volumes/My Media} /data", result: []string{"/Volumes/My Media", "/data"}},
		{raw: "<empty>", result: []string{}},
	}

	for _, test := range tests {
		result := Reply{raw: test.raw}.Paths()
		if !reflect.DeepEqual(result, test.result) {
			t.Errorf("does not match: %v %v (from %q)", test.result, result, test.raw)
		}
	}
}

func TestReplyEmpty(t *testing.T) {
	if !(Reply{}.Empty()) {
		t.Error("zero reply should be empty")
	}
	if !(Reply{raw: EmptyValue}.Empty()) {
		t.Error("<empty> reply should be empty")
	}
	if (Reply{raw: "0"}.Empty()) {
		t.Error("0 reply should not be empty")
	}
}

func TestReplyBool(t *testing.T) {
	for raw, expected := range map[string]bool{"1": true, "0": false} {
		result, err := Reply{raw: raw}.Bool()
		if err != nil {
			t.Error(err)
		} else if result != expected {
			t.Errorf("does not match: %v %v (from %q)", expected, result, raw)
		}
	}

	if _, err := (Reply{raw: "yes"}).Bool(); err == nil {
		t.Error("expected an error for a non-boolean reply")
	}
}

func TestReplyInt(t *testing.T) {
	result, err := Reply{raw: "42"}.Int()
	if err != nil {
		t.Error(err)
	} else if result != 42 {
		t.Errorf("does not match: 42 %v", result)
	}

	if _, err := (Reply{raw: "<empty>"}).Int(); err == nil {
		t.Error("expected an error for a non-numeric reply")
	}
}

func TestReplyTime(t *testing.T) {
	result, err := Reply{raw: "1617709337"}.Time()
	if err != nil {
		t.Error(err)
	} else if !result.Equal(time.Unix(1617709337, 0)) {
		t.Errorf("does not match: %v", result)
	}

	// The server reports dateless resources as 0
	result, err = Reply{raw: "0"}.Time()
	if err != nil {
		t.Error(err)
	} else if !result.IsZero() {
		t.Errorf("expected the zero time, got %v", result)
	}
}

func TestReplyInt64s(t *testing.T) {
	result, err := Reply{raw: "1024 2048"}.Int64s()
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(result, []int64{1024, 2048}) {
		t.Errorf("does not match: %v", result)
	}

	result, err = Reply{raw: "<empty>"}.Int64s()
	if err != nil {
		t.Error(err)
	} else if len(result) != 0 {
		t.Errorf("expected no values, got %v", result)
	}

	if _, err := (Reply{raw: "1024 n/a"}).Int64s(); err == nil {
		t.Error("expected an error for a non-numeric reply")
	}
}

func TestReplyTimes(t *testing.T) {
	result, err := Reply{raw: "1617709337 1617795737"}.Times()
	if err != nil {
		t.Error(err)
	}
	expected := []time.Time{time.Unix(1617709337, 0), time.Unix(1617795737, 0)}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("does not match: %v %v", expected, result)
	}
}

package awp5

import (
	"reflect"
	"testing"
)

type newCmdTest struct {
	words  []string
	result []string
}

func TestNewCmd(t *testing.T) {
	tests := []newCmdTest{
		{words: []string{"Volume", "LTO01", "isonline"}, result: []string{"Volume", "LTO01", "isonline"}},
		{words: []string{"Job", "123", "status", ""}, result: []string{"Job", "123", "status"}},
		{words: []string{"", "", ""}, result: nil},
		{words: []string{"Pool", "Archive Pool", "volumes"}, result: []string{"Pool", "{Archive Pool}", "volumes"}},
		{words: []string{"Client", "localhost", "describe", "{already braced}"}, result: []string{"Client", "localhost", "describe", "{already braced}"}},
		{words: []string{"ArchiveEntry", "h1", "clippath", "{}"}, result: []string{"ArchiveEntry", "h1", "clippath", "{}"}},
		{words: []string{"tab\there"}, result: []string{"{tab\there}"}},
	}

	for _, test := range tests {
		result := NewCmd(test.words...).Words()
		if !reflect.DeepEqual(result, test.result) {
			t.Errorf("does not match: %v %v (from %v)", test.result, result, test.words)
		}
	}
}

func TestRawCmd(t *testing.T) {
	words := []string{"Volume", "", "two words", "label"}
	result := RawCmd(words...).Words()
	if !reflect.DeepEqual(result, words) {
		t.Errorf("does not match: %v %v", words, result)
	}
}

func TestCmdWith(t *testing.T) {
	base := NewCmd("ArchivePlan", "10001", "run")
	extended := base.With("-delete", "1")

	if got := base.String(); got != "ArchivePlan 10001 run" {
		t.Errorf("base command changed: %v", got)
	}
	if got := extended.String(); got != "ArchivePlan 10001 run -delete 1" {
		t.Errorf("does not match: %v", got)
	}
}

type splitBracedTest struct {
	s      string
	result []string
}

func TestSplitBraced(t *testing.T) {
	tests := []splitBracedTest{
		{s: "", result: nil},
		{s: "   ", result: nil},
		{s: "/Users/login", result: []string{"/Users/login"}},
		{s: "/data /home", result: []string{"/data", "/home"}},
		{s: "{/Volumes/My Media} /data", result: []string{"/Volumes/My Media", "/data"}},
		{s: "/data {/Volumes/My Media}", result: []string{"/data", "/Volumes/My Media"}},
		{s: "{a} {b c} d", result: []string{"a", "b c", "d"}},
		{s: "{}", result: []string{""}},
		{s: "{unterminated", result: []string{"unterminated"}},
		{s: "  /data\t{/mnt/long name}\n", result: []string{"/data", "/mnt/long name"}},
	}

	for _, test := range tests {
		result := splitBraced(test.s)
		if !reflect.DeepEqual(result, test.result) {
			t.Errorf("does not match: %v %v (from %q)", test.result, result, test.s)
		}
	}
}

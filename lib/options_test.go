package awp5

import (
	"reflect"
	"testing"
)

type splitOptionsTest struct {
	s      string
	result [][2]string
}

func TestSplitOptions(t *testing.T) {
	tests := []splitOptionsTest{
		{s: "", result: [][2]string{}},
		{s: "a", result: [][2]string{{"A", "true"}}},
		{s: "a=1", result: [][2]string{{"A", "1"}}},
		{s: "a=1,b=2,c=3", result: [][2]string{{"A", "1"}, {"B", "2"}, {"C", "3"}}},
		{s: "a=1,@b=2,c=3", result: [][2]string{{"A", "1"}, {"@B", "2"}, {"C", "3"}}},
		{s: "a=1,@b=2,c=3,@b=4", result: [][2]string{{"A", "1"}, {"@B", "2"}, {"C", "3"}, {"@B", "4"}}},
		{s: "a=1,b,c=3", result: [][2]string{{"A", "1"}, {"B", "true"}, {"C", "3"}}},
		{s: "a=1\\,b=2,c=3", result: [][2]string{{"A", "1,b=2"}, {"C", "3"}}},
		{s: "a=1\\\\\\,b=2,c=3", result: [][2]string{{"A", "1\\,b=2"}, {"C", "3"}}},
		{s: "a=1\\\\\\\\\\,b=2,c=3", result: [][2]string{{"A", "1\\\\,b=2"}, {"C", "3"}}},
		{s: "a=1\\\\,b=2,c=3", result: [][2]string{{"A", "1\\"}, {"B", "2"}, {"C", "3"}}},
		{s: "a=1\\\\\\\\,b=2,c=3", result: [][2]string{{"A", "1\\\\"}, {"B", "2"}, {"C", "3"}}},
		{s: "a=1\\0,b=2,c=3", result: [][2]string{{"A", "1\\0"}, {"B", "2"}, {"C", "3"}}},
		{s: "a=1,b=2,\\c=3\\", result: [][2]string{{"A", "1"}, {"B", "2"}, {"C", "3\\"}}},
		{s: "type=fs,path=/srv/p5-exports", result: [][2]string{{"Type", "fs"}, {"Path", "/srv/p5-exports"}}},
	}

	for _, test := range tests {
		result := SplitOptions(test.s)
		if !reflect.DeepEqual(result, test.result) {
			t.Errorf("does not match: %v %v (from %v)", test.result, result, test.s)
		}
	}
}

func TestEvalOptions(t *testing.T) {
	presets := map[string][]KeyValuePair{
		"lab":         {{"KeyFile", "/etc/awp5/export.key"}, {"Prefix", "exports/{{.EscapedServer}}/"}},
		"alt-key":     {{"KeyFile", "/etc/awp5/alt.key"}},
		"escape-host": {{"EscapedServer", "{{.Server | replace \"/\" \"-\" | replace \":\" \"-\"}}"}},
		"fs-lab":      {{"Preset", "escape-host"}, {"Type", "fs"}, {"Preset", "lab"}, {"Path", "/srv/p5-exports/{{.EscapedServer}}/"}},
	}

	options := []KeyValuePair{
		{"Server", "lab.example.com:8000"},
		{"Preset", "fs-lab"},
		{"Preset", "alt-key"},
		{"@Scope", "jobs"},
		{"@Scope", "volumes"},
	}

	result, err := EvalOptions(options, presets)
	if err != nil {
		t.Error(err)
	}

	expected := &Options{
		String: map[string]string{
			"Type":          "fs",
			"Server":        "lab.example.com:8000",
			"EscapedServer": "lab.example.com-8000",
			"KeyFile":       "/etc/awp5/alt.key",
			"Prefix":        "exports/lab.example.com-8000/",
			"Path":          "/srv/p5-exports/lab.example.com-8000/",
		},
		StrSlice: map[string][]string{
			"Scope": {"jobs", "volumes"},
		},
	}

	if !reflect.DeepEqual(expected, result) {
		t.Errorf("result: %v ; expected: %v", result, expected)
	}
}

func TestOptionsAccessors(t *testing.T) {
	options := &Options{
		String: map[string]string{
			"Type":    "command",
			"Command": "ssh export-host awp5-store",
			"Ssl":     "true",
		},
		StrSlice: map[string][]string{
			"FullCommand": {"ssh", "export-host", "awp5-store"},
		},
	}

	if result := options.GetString("Type", "fs"); result != "command" {
		t.Errorf("does not match: command %v", result)
	}
	if result := options.GetString("Missing", "fallback"); result != "fallback" {
		t.Errorf("does not match: fallback %v", result)
	}

	result := options.GetCommand("Command", nil)
	if !reflect.DeepEqual(result, []string{"ssh", "export-host", "awp5-store"}) {
		t.Errorf("does not match: %v", result)
	}
	result = options.GetCommand("FullCommand", nil)
	if !reflect.DeepEqual(result, []string{"ssh", "export-host", "awp5-store"}) {
		t.Errorf("does not match: %v", result)
	}
	result = options.GetCommand("Missing", []string{"cat"})
	if !reflect.DeepEqual(result, []string{"cat"}) {
		t.Errorf("does not match: %v", result)
	}

	ssl, err := options.GetBoolean("Ssl", false)
	if err != nil {
		t.Error(err)
	} else if !ssl {
		t.Error("expected true")
	}
	ssl, err = options.GetBoolean("Missing", true)
	if err != nil {
		t.Error(err)
	} else if !ssl {
		t.Error("expected the default")
	}
	if _, err := options.GetBoolean("Command", false); err == nil {
		t.Error("expected an error for a non-boolean value")
	}
}

package awp5

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"filippo.io/age"
)

func TestBundleNames(t *testing.T) {
	b := NewBundle("jobs", time.Date(2021, 4, 6, 12, 22, 17, 123000000, time.UTC))

	if b.Name() != "20210406T122217.123-jobs" {
		t.Errorf("does not match: %v", b.Name())
	}
	if b.Filename() != "20210406T122217.123-jobs.awr" {
		t.Errorf("does not match: %v", b.Filename())
	}

	ts, err := b.Stamp.Time()
	if err != nil {
		t.Error(err)
	} else if !ts.Equal(time.Date(2021, 4, 6, 12, 22, 17, 123000000, time.UTC)) {
		t.Errorf("does not match: %v", ts)
	}
}

type parseBundleFilenameTest struct {
	f          string
	requireExt bool
	result     Bundle
	fails      bool
}

func TestParseBundleFilename(t *testing.T) {
	tests := []parseBundleFilenameTest{
		{f: "20210406T122217.123-jobs.awr", requireExt: true, result: Bundle{Stamp: "20210406T122217.123", Scope: "jobs"}},
		{f: "20210406T122217.123-jobs", requireExt: false, result: Bundle{Stamp: "20210406T122217.123", Scope: "jobs"}},
		{f: "exports/20210406T122217.123-jobs.awr", requireExt: true, result: Bundle{Stamp: "20210406T122217.123", Scope: "jobs"}},
		{f: "20210406T122217.123-jobs", requireExt: true, fails: true},
		{f: "20210406T122217-jobs.awr", requireExt: true, fails: true},
		{f: "jobs.awr", requireExt: true, fails: true},
		{f: "20210406T122217.123-.awr", requireExt: true, fails: true},
	}

	for _, test := range tests {
		result, err := ParseBundleFilename(test.f, test.requireExt)
		if test.fails {
			if err == nil {
				t.Errorf("expected an error for %v", test.f)
			}
			continue
		}
		if err != nil {
			t.Errorf("cannot parse %v: %v", test.f, err)
		} else if !reflect.DeepEqual(result, test.result) {
			t.Errorf("does not match: %v %v (from %v)", test.result, result, test.f)
		}
	}
}

type staticDestination struct {
	bundles []Bundle
}

func (d *staticDestination) ListBundles() ([]Bundle, error)                { return d.bundles, nil }
func (d *staticDestination) RemoveBundle(b Bundle) error                   { return nil }
func (d *staticDestination) SendBundle(b Bundle, data io.Reader) error     { return nil }
func (d *staticDestination) ReceiveBundle(b Bundle) (io.ReadCloser, error) { return nil, nil }

func TestSortedListBundles(t *testing.T) {
	d := &staticDestination{bundles: []Bundle{
		{Stamp: "20210404T000000.000", Scope: "jobs"},
		{Stamp: "20210406T122217.123", Scope: "jobs"},
		{Stamp: "20210405T000000.000", Scope: "volumes"},
	}}

	result, err := SortedListBundles(d)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Bundle{
		{Stamp: "20210406T122217.123", Scope: "jobs"},
		{Stamp: "20210405T000000.000", Scope: "volumes"},
		{Stamp: "20210404T000000.000", Scope: "jobs"},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("does not match: %v %v", expected, result)
	}
}

func TestLoadKeys(t *testing.T) {
	id, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatal(err)
	}

	keyFile := filepath.Join(t.TempDir(), "export.key")
	if err := os.WriteFile(keyFile, []byte(id.String()+"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	identities, err := LoadIdentities(keyFile, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(identities) != 1 {
		t.Fatalf("expected one identity, got %d", len(identities))
	}

	// A private key yields its derived recipient
	recipients, err := LoadRecipients(keyFile, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(recipients) != 1 {
		t.Fatalf("expected one recipient, got %d", len(recipients))
	}
	if r, ok := recipients[0].(*age.X25519Recipient); !ok || r.String() != id.Recipient().String() {
		t.Errorf("does not match: %v %v", id.Recipient(), recipients[0])
	}

	recipients, err = LoadRecipients("", id.Recipient().String())
	if err != nil {
		t.Fatal(err)
	}
	if len(recipients) != 1 {
		t.Fatalf("expected one recipient, got %d", len(recipients))
	}

	if _, err := LoadIdentities(keyFile, id.String()); err == nil {
		t.Error("expected an error when both a file and a key are given")
	}
}

package destinations

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"testing"
	"time"
)

// testDestination sends, lists, receives and removes bundles through
// the Destination interface. Shared by the fs and command tests.
func testDestination(t *testing.T, dst awp5.Destination) {
	bundles, err := dst.ListBundles()
	if err != nil {
		t.Fatalf("list on empty destination: %v", err)
	}
	if len(bundles) != 0 {
		t.Fatalf("expected no bundles, got %v", bundles)
	}

	older := awp5.NewBundle("jobs", time.Date(2021, 4, 6, 12, 22, 17, 0, time.UTC))
	newer := awp5.NewBundle("volumes", time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC))

	if err = dst.SendBundle(older, strings.NewReader("older data")); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err = dst.SendBundle(newer, strings.NewReader("newer data")); err != nil {
		t.Fatalf("send: %v", err)
	}

	bundles, err = awp5.SortedListBundles(dst)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(bundles, []awp5.Bundle{newer, older}) {
		t.Fatalf("expected %v, got %v", []awp5.Bundle{newer, older}, bundles)
	}

	r, err := dst.ReceiveBundle(older)
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	data, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if string(data) != "older data" {
		t.Fatalf("expected %q, got %q", "older data", string(data))
	}

	if err = dst.RemoveBundle(older); err != nil {
		t.Fatalf("remove: %v", err)
	}
	bundles, err = dst.ListBundles()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(bundles, []awp5.Bundle{newer}) {
		t.Fatalf("expected %v, got %v", []awp5.Bundle{newer}, bundles)
	}
}

func TestFSDestination(t *testing.T) {
	dir := t.TempDir()

	dst, err := New(&awp5.Options{String: map[string]string{"Type": "fs", "Path": dir}})
	if err != nil {
		t.Fatalf("cannot create destination: %v", err)
	}

	// Stray entries must not show up as bundles.
	for _, name := range []string{".hidden", "_tmp-20210406T122217.000-jobs.awr", "notes.txt"} {
		if err = os.WriteFile(path.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err = os.Mkdir(path.Join(dir, "20210101T000000.000-jobs.awr"), 0755); err != nil {
		t.Fatal(err)
	}

	testDestination(t, dst)
}

func TestFSDestinationMissingPath(t *testing.T) {
	_, err := New(&awp5.Options{String: map[string]string{"Type": "fs"}})
	if err != ErrFSPath {
		t.Fatalf("expected ErrFSPath, got %v", err)
	}
}

func TestNewInvalidType(t *testing.T) {
	_, err := New(&awp5.Options{String: map[string]string{"Type": "carrier-pigeon"}})
	if err == nil {
		t.Fatal("expected an error for an unknown destination type")
	}
}

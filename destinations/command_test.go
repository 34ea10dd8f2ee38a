package destinations

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"os"
	"path"
	"testing"
)

// Stores bundles as plain files in the directory given by the Dir
// option, which reaches the helper as AWP5_OPT_DIR.
const destinationHelper = `#!/bin/sh
case "$1 $2" in
"destination validate-options")
	test -d "$AWP5_OPT_DIR"
	;;
"destination list-bundles")
	ls -1 "$AWP5_OPT_DIR"
	;;
"destination remove-bundle")
	rm "$AWP5_OPT_DIR/$3"
	;;
"destination send-bundle")
	cat > "$AWP5_OPT_DIR/$3"
	;;
"destination receive-bundle")
	cat "$AWP5_OPT_DIR/$3"
	;;
*)
	exit 1
	;;
esac
`

func TestCommandDestination(t *testing.T) {
	dir := t.TempDir()
	helper := path.Join(dir, "helper.sh")
	store := path.Join(dir, "store")
	if err := os.WriteFile(helper, []byte(destinationHelper), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(store, 0755); err != nil {
		t.Fatal(err)
	}

	dst, err := New(&awp5.Options{String: map[string]string{"Type": "command", "Command": helper, "Dir": store}})
	if err != nil {
		t.Fatalf("cannot create destination: %v", err)
	}

	testDestination(t, dst)
}

func TestCommandDestinationMissingCommand(t *testing.T) {
	_, err := New(&awp5.Options{String: map[string]string{"Type": "command"}})
	if err != ErrCommandMissing {
		t.Fatalf("expected ErrCommandMissing, got %v", err)
	}
}

func TestCommandDestinationFailingHelper(t *testing.T) {
	helper := path.Join(t.TempDir(), "helper.sh")
	if err := os.WriteFile(helper, []byte("#!/bin/sh\nexit 1\n"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := New(&awp5.Options{String: map[string]string{"Type": "command", "Command": helper}})
	if err == nil {
		t.Fatal("expected an error when validate-options fails")
	}
}

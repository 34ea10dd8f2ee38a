package awp5

import (
	"strconv"
	"time"
)

// RestoreSelectionCreate creates a temporary restore selection placing
// restored files on client, and returns its name. A non-empty relocate
// must name an existing directory on the client; all files are restored
// there instead of their original locations. Like archive selections,
// restore selections are deleted automatically once submitted.
func RestoreSelectionCreate(c *Connection, client, relocate string) (string, error) {
	return execText(c, "RestoreSelection", "create", client, relocate)
}

// RestoreSelectionAddEntry adds one archived file by its entry handle
// and returns the path it will be restored to. A non-empty path
// overrides the target path for this entry. The returned path is not
// translated by the selection's relocate directory.
func RestoreSelectionAddEntry(c *Connection, name, handle, path string) (string, error) {
	return execText(c, "RestoreSelection", name, "addentry", handle, path)
}

// RestoreSelectionAddFrom loads selection entries from inputFile, one
// entry handle per line with an optional TAB-separated relocate path,
// and returns the number of entries that will be restored.
func RestoreSelectionAddFrom(c *Connection, name, inputFile string) (int, error) {
	return execInt(c, "RestoreSelection", name, "addfrom", inputFile)
}

// RestoreSelectionDescribe returns the description shown in the job
// monitor; with a non-empty title the description is set first.
func RestoreSelectionDescribe(c *Connection, name, title string) (string, error) {
	return execText(c, "RestoreSelection", name, "describe", title)
}

// RestoreSelectionDestroy explicitly destroys a selection that will not
// be submitted and reports whether it was destroyed.
func RestoreSelectionDestroy(c *Connection, name string) (bool, error) {
	return execDestroyed(c, "RestoreSelection", name, "destroy")
}

// RestoreSelectionEntries returns the number of entries in the selection.
func RestoreSelectionEntries(c *Connection, name string) (int, error) {
	return execInt(c, "RestoreSelection", name, "entries")
}

// RestoreSelectionFindEntry fills the selection by searching entries
// archived with plan and returns the resulting entry count. The
// expression combines key/operator/value triples with &&, where the
// operator is == (equals) or *= (starts with); the name key matches
// file and folder names. Entries on inaccessible volumes are skipped.
func RestoreSelectionFindEntry(c *Connection, name, plan, expr string) (int, error) {
	return execInt(c, "RestoreSelection", name, "findentry", plan, expr)
}

// RestoreSelectionOnFileCreation returns the command registered to run
// after the submitted job has created the restored files; with a
// non-empty command it is registered first.
func RestoreSelectionOnFileCreation(c *Connection, name, command string) (string, error) {
	return execText(c, "RestoreSelection", name, "onfilecreation", command)
}

// RestoreSelectionOnJobActivation returns the command registered to run
// just before the submitted job starts; with a non-empty command it is
// registered first. The first word may carry a "client:" prefix naming
// the P5 client to run on, defaulting to the selection's client.
func RestoreSelectionOnJobActivation(c *Connection, name, command string) (string, error) {
	return execText(c, "RestoreSelection", name, "onjobactivation", command)
}

// RestoreSelectionOnJobCompletion returns the command registered to run
// right after the submitted job completes; with a non-empty command it
// is registered first.
func RestoreSelectionOnJobCompletion(c *Connection, name, command string) (string, error) {
	return execText(c, "RestoreSelection", name, "onjobcompletion", command)
}

// RestoreSelectionSize returns the summed size in bytes of all files to
// restore.
func RestoreSelectionSize(c *Connection, name string) (int64, error) {
	return execInt64(c, "RestoreSelection", name, "size")
}

// RestoreSelectionSubmit submits the selection for execution and returns
// the restore job id. A zero when starts the restore immediately,
// otherwise it is scheduled for the given time.
func RestoreSelectionSubmit(c *Connection, name string, when time.Time) (string, error) {
	words := []string{"RestoreSelection", name, "submit"}
	if !when.IsZero() {
		words = append(words, strconv.FormatInt(when.Unix(), 10))
	}
	return execText(c, words...)
}

// RestoreSelectionVolumes lists the volumes holding the selection's
// entries.
func RestoreSelectionVolumes(c *Connection, name string) ([]string, error) {
	return execNames(c, "RestoreSelection", name, "volumes")
}

// RestoreSelection addresses one temporary restore selection by name.
// The usual lifecycle is Create, AddEntry or FindEntry calls, then
// Submit, which hands the selection over to the job scheduler for good.
type RestoreSelection struct {
	resource
}

func NewRestoreSelection(c *Connection, name string) RestoreSelection {
	return RestoreSelection{resource{c, name}}
}

func (s RestoreSelection) AddEntry(handle, path string) (string, error) {
	return RestoreSelectionAddEntry(s.conn, s.name, handle, path)
}

func (s RestoreSelection) AddFrom(inputFile string) (int, error) {
	return RestoreSelectionAddFrom(s.conn, s.name, inputFile)
}

func (s RestoreSelection) Describe(title string) (string, error) {
	return RestoreSelectionDescribe(s.conn, s.name, title)
}

func (s RestoreSelection) Destroy() (bool, error) {
	return RestoreSelectionDestroy(s.conn, s.name)
}

func (s RestoreSelection) Entries() (int, error) {
	return RestoreSelectionEntries(s.conn, s.name)
}

func (s RestoreSelection) FindEntry(plan, expr string) (int, error) {
	return RestoreSelectionFindEntry(s.conn, s.name, plan, expr)
}

func (s RestoreSelection) OnFileCreation(command string) (string, error) {
	return RestoreSelectionOnFileCreation(s.conn, s.name, command)
}

func (s RestoreSelection) OnJobActivation(command string) (string, error) {
	return RestoreSelectionOnJobActivation(s.conn, s.name, command)
}

func (s RestoreSelection) OnJobCompletion(command string) (string, error) {
	return RestoreSelectionOnJobCompletion(s.conn, s.name, command)
}

func (s RestoreSelection) Size() (int64, error) {
	return RestoreSelectionSize(s.conn, s.name)
}

func (s RestoreSelection) Submit(when time.Time) (string, error) {
	return RestoreSelectionSubmit(s.conn, s.name, when)
}

func (s RestoreSelection) Volumes() ([]string, error) {
	return RestoreSelectionVolumes(s.conn, s.name)
}

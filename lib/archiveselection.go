package awp5

// Levels an archive selection can run at.
const (
	ArchiveSelectionLevelFull      = "full"
	ArchiveSelectionLevelIncrement = "increment"
)

// ArchiveSelectionCreate creates a temporary archive selection for files
// residing on client, to be archived under plan, and returns its name.
// A non-empty indexroot forces all files to be indexed under that path.
// Selections do not survive server restarts and are deleted automatically
// once the associated job has been submitted.
func ArchiveSelectionCreate(c *Connection, client, plan, indexroot string) (string, error) {
	return execText(c, "ArchiveSelection", "create", client, plan, indexroot)
}

// ArchiveSelectionAddFrom loads selection entries from inputFile on the
// client, one path per line with optional TAB-separated key/value
// metadata pairs, and returns the number of accepted pairs. The command
// writes outputFile mapping each accepted path to its entry handle.
func ArchiveSelectionAddFrom(c *Connection, name, inputFile, outputFile string) (int, error) {
	return execInt(c, "ArchiveSelection", name, "addfrom", inputFile, outputFile)
}

// ArchiveSelectionAddEntry adds the file or directory at path, recursively,
// indexed relative to the selection's indexroot. Optional key/value pairs
// are stored in the archive index and searchable at restore time. An
// increment-level selection skips paths already archived and returns an
// empty handle; otherwise the handle of the new entry is returned.
func ArchiveSelectionAddEntry(c *Connection, name, path string, keyValues ...string) (string, error) {
	return archiveSelectionAdd(c, name, "addentry", path, keyValues)
}

// ArchiveSelectionAddEntryAbs is AddEntry with the path indexed 1:1,
// ignoring indexroot and prefixes.
func ArchiveSelectionAddEntryAbs(c *Connection, name, path string, keyValues ...string) (string, error) {
	return archiveSelectionAdd(c, name, "addentryabs", path, keyValues)
}

// ArchiveSelectionAddDirectory adds the directory node at path without
// its contents, indexed relative to the selection's indexroot.
func ArchiveSelectionAddDirectory(c *Connection, name, path string, keyValues ...string) (string, error) {
	return archiveSelectionAdd(c, name, "adddirectory", path, keyValues)
}

// ArchiveSelectionAddDirectoryAbs is AddDirectory with the path indexed
// 1:1, ignoring indexroot and prefixes.
func ArchiveSelectionAddDirectoryAbs(c *Connection, name, path string, keyValues ...string) (string, error) {
	return archiveSelectionAdd(c, name, "adddirectoryabs", path, keyValues)
}

// ArchiveSelectionAddFile adds the single file at path, indexed relative
// to the selection's indexroot.
func ArchiveSelectionAddFile(c *Connection, name, path string, keyValues ...string) (string, error) {
	return archiveSelectionAdd(c, name, "addfile", path, keyValues)
}

// ArchiveSelectionAddFileAbs is AddFile with the path indexed 1:1,
// ignoring indexroot and prefixes.
func ArchiveSelectionAddFileAbs(c *Connection, name, path string, keyValues ...string) (string, error) {
	return archiveSelectionAdd(c, name, "addfileabs", path, keyValues)
}

func archiveSelectionAdd(c *Connection, name, verb, path string, keyValues []string) (string, error) {
	words := append([]string{"ArchiveSelection", name, verb, path}, keyValues...)
	reply, err := execReply(c, words...)
	if err != nil {
		return "", err
	}
	if reply.Empty() {
		return "", nil
	}
	return reply.Text(), nil
}

// ArchiveSelectionDescribe returns the description shown in the job
// monitor; with a non-empty title the description is set first.
func ArchiveSelectionDescribe(c *Connection, name, title string) (string, error) {
	return execText(c, "ArchiveSelection", name, "describe", title)
}

// ArchiveSelectionDestroy explicitly destroys a selection that will not
// be submitted and reports whether it was destroyed.
func ArchiveSelectionDestroy(c *Connection, name string) (bool, error) {
	return execDestroyed(c, "ArchiveSelection", name, "destroy")
}

// ArchiveSelectionEntries returns the number of entries in the selection.
func ArchiveSelectionEntries(c *Connection, name string) (int, error) {
	return execInt(c, "ArchiveSelection", name, "entries")
}

// ArchiveSelectionLevel returns the selection's level, full or increment.
func ArchiveSelectionLevel(c *Connection, name string) (string, error) {
	return execText(c, "ArchiveSelection", name, "level")
}

// ArchiveSelectionSetLevel sets the selection's level,
// ArchiveSelectionLevelFull or ArchiveSelectionLevelIncrement.
func ArchiveSelectionSetLevel(c *Connection, name, level string) error {
	return execOK(c, "ArchiveSelection", name, "level", level)
}

// ArchiveSelectionSize returns the number of entries in the selection.
//
// Deprecated: the CLI deprecates size in favor of entries; use
// ArchiveSelectionEntries.
func ArchiveSelectionSize(c *Connection, name string) (int, error) {
	return execInt(c, "ArchiveSelection", name, "size")
}

// ArchiveSelectionSubmit submits the selection for execution and returns
// the archive job id; with now the plan's execution times are overridden.
// Submission passes ownership to the job scheduler and implicitly
// destroys the selection, so the name must not be used afterwards.
func ArchiveSelectionSubmit(c *Connection, name string, now bool) (string, error) {
	words := []string{"ArchiveSelection", name, "submit"}
	if now {
		words = append(words, "1")
	}
	return execText(c, words...)
}

// ArchiveSelectionOnJobActivation returns the command registered to run
// just before the submitted job starts; with a non-empty command it is
// registered first. The first word may carry a "client:" prefix naming
// the P5 client to run on, defaulting to the selection's client.
func ArchiveSelectionOnJobActivation(c *Connection, name, command string) (string, error) {
	return execText(c, "ArchiveSelection", name, "onjobactivation", command)
}

// ArchiveSelectionOnJobCompletion returns the command registered to run
// right after the submitted job completes; with a non-empty command it
// is registered first.
func ArchiveSelectionOnJobCompletion(c *Connection, name, command string) (string, error) {
	return execText(c, "ArchiveSelection", name, "onjobcompletion", command)
}

// ArchiveSelectionOnFileDeletion returns the command registered to run
// after the submitted job has deleted the archived files; with a
// non-empty command it is registered first.
func ArchiveSelectionOnFileDeletion(c *Connection, name, command string) (string, error) {
	return execText(c, "ArchiveSelection", name, "onfiledeletion", command)
}

// ArchiveSelection addresses one temporary archive selection by name.
// The usual lifecycle is Create, any number of Add calls, then Submit,
// which hands the selection over to the job scheduler for good.
type ArchiveSelection struct {
	resource
}

func NewArchiveSelection(c *Connection, name string) ArchiveSelection {
	return ArchiveSelection{resource{c, name}}
}

func (s ArchiveSelection) AddFrom(inputFile, outputFile string) (int, error) {
	return ArchiveSelectionAddFrom(s.conn, s.name, inputFile, outputFile)
}

func (s ArchiveSelection) AddEntry(path string, keyValues ...string) (string, error) {
	return ArchiveSelectionAddEntry(s.conn, s.name, path, keyValues...)
}

func (s ArchiveSelection) AddEntryAbs(path string, keyValues ...string) (string, error) {
	return ArchiveSelectionAddEntryAbs(s.conn, s.name, path, keyValues...)
}

func (s ArchiveSelection) AddDirectory(path string, keyValues ...string) (string, error) {
	return ArchiveSelectionAddDirectory(s.conn, s.name, path, keyValues...)
}

func (s ArchiveSelection) AddDirectoryAbs(path string, keyValues ...string) (string, error) {
	return ArchiveSelectionAddDirectoryAbs(s.conn, s.name, path, keyValues...)
}

func (s ArchiveSelection) AddFile(path string, keyValues ...string) (string, error) {
	return ArchiveSelectionAddFile(s.conn, s.name, path, keyValues...)
}

func (s ArchiveSelection) AddFileAbs(path string, keyValues ...string) (string, error) {
	return ArchiveSelectionAddFileAbs(s.conn, s.name, path, keyValues...)
}

func (s ArchiveSelection) Describe(title string) (string, error) {
	return ArchiveSelectionDescribe(s.conn, s.name, title)
}

func (s ArchiveSelection) Destroy() (bool, error) {
	return ArchiveSelectionDestroy(s.conn, s.name)
}

func (s ArchiveSelection) Entries() (int, error) {
	return ArchiveSelectionEntries(s.conn, s.name)
}

func (s ArchiveSelection) Level() (string, error) {
	return ArchiveSelectionLevel(s.conn, s.name)
}

func (s ArchiveSelection) SetLevel(level string) error {
	return ArchiveSelectionSetLevel(s.conn, s.name, level)
}

// Size returns the number of entries in the selection.
//
// Deprecated: use Entries.
func (s ArchiveSelection) Size() (int, error) {
	return ArchiveSelectionSize(s.conn, s.name)
}

func (s ArchiveSelection) Submit(now bool) (string, error) {
	return ArchiveSelectionSubmit(s.conn, s.name, now)
}

func (s ArchiveSelection) OnJobActivation(command string) (string, error) {
	return ArchiveSelectionOnJobActivation(s.conn, s.name, command)
}

func (s ArchiveSelection) OnJobCompletion(command string) (string, error) {
	return ArchiveSelectionOnJobCompletion(s.conn, s.name, command)
}

func (s ArchiveSelection) OnFileDeletion(command string) (string, error) {
	return ArchiveSelectionOnFileDeletion(s.conn, s.name, command)
}

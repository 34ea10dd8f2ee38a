package awp5

// SyncSelectionCreate creates a temporary sync selection under the given
// synchronize plan and returns its name. Like the other selections it is
// deleted automatically once submitted.
func SyncSelectionCreate(c *Connection, plan string) (string, error) {
	return execText(c, "SyncSelection", "create", plan)
}

// SyncSelectionAddDirectory adds one directory to the selection and
// returns its path. The directory must live on the plan's source client
// under the plan's source path.
func SyncSelectionAddDirectory(c *Connection, name, path string) (string, error) {
	return execText(c, "SyncSelection", name, "adddirectory", path)
}

// SyncSelectionAddRecursive adds a directory and all its subfolders to
// the selection and returns the path. The directory must live on the
// plan's source client under the plan's source path.
func SyncSelectionAddRecursive(c *Connection, name, path string) (string, error) {
	return execText(c, "SyncSelection", name, "addrecursive", path)
}

// SyncSelectionDestroy explicitly destroys a selection that will not be
// submitted and reports whether it was destroyed.
func SyncSelectionDestroy(c *Connection, name string) (bool, error) {
	return execDestroyed(c, "SyncSelection", name, "destroy")
}

// SyncSelectionOnJobActivation returns the command registered to run
// just before the submitted job starts; with a non-empty command it is
// registered first. The first word may carry a "client:" prefix naming
// the P5 client to run on, defaulting to the plan's source client.
func SyncSelectionOnJobActivation(c *Connection, name, command string) (string, error) {
	return execText(c, "SyncSelection", name, "onjobactivation", command)
}

// SyncSelectionOnJobCompletion returns the command registered to run
// right after the submitted job completes; with a non-empty command it
// is registered first.
func SyncSelectionOnJobCompletion(c *Connection, name, command string) (string, error) {
	return execText(c, "SyncSelection", name, "onjobcompletion", command)
}

// SyncSelectionSubmit submits the selection for execution and returns
// the sync job id; with now the plan's execution times are overridden.
// Submission passes ownership to the job scheduler and implicitly
// destroys the selection, so the name must not be used afterwards.
func SyncSelectionSubmit(c *Connection, name string, now bool) (string, error) {
	words := []string{"SyncSelection", name, "submit"}
	if now {
		words = append(words, "1")
	}
	return execText(c, words...)
}

// SyncSelection addresses one temporary sync selection by name. The
// usual lifecycle is Create, AddDirectory or AddRecursive calls, then
// Submit, which hands the selection over to the job scheduler for good.
type SyncSelection struct {
	resource
}

func NewSyncSelection(c *Connection, name string) SyncSelection {
	return SyncSelection{resource{c, name}}
}

func (s SyncSelection) AddDirectory(path string) (string, error) {
	return SyncSelectionAddDirectory(s.conn, s.name, path)
}

func (s SyncSelection) AddRecursive(path string) (string, error) {
	return SyncSelectionAddRecursive(s.conn, s.name, path)
}

func (s SyncSelection) Destroy() (bool, error) {
	return SyncSelectionDestroy(s.conn, s.name)
}

func (s SyncSelection) OnJobActivation(command string) (string, error) {
	return SyncSelectionOnJobActivation(s.conn, s.name, command)
}

func (s SyncSelection) OnJobCompletion(command string) (string, error) {
	return SyncSelectionOnJobCompletion(s.conn, s.name, command)
}

func (s SyncSelection) Submit(now bool) (string, error) {
	return SyncSelectionSubmit(s.conn, s.name, now)
}

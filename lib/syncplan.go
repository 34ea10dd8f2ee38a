package awp5

// SyncPlanNames lists all configured synchronize plans. Sync plans are
// created and deleted in the P5 web GUI; the CLI can query them and
// adjust their source and target paths.
func SyncPlanNames(c *Connection) ([]string, error) {
	return execNames(c, "SyncPlan", "names")
}

// SyncPlanDescribe returns the human-readable plan description.
func SyncPlanDescribe(c *Connection, name string) (string, error) {
	return execText(c, "SyncPlan", name, "describe")
}

// SyncPlanDisabled reports whether the plan is disabled.
func SyncPlanDisabled(c *Connection, name string) (bool, error) {
	return execBool(c, "SyncPlan", name, "disabled")
}

// SyncPlanEnabled reports whether the plan is enabled.
func SyncPlanEnabled(c *Connection, name string) (bool, error) {
	return execBool(c, "SyncPlan", name, "enabled")
}

// SyncPlanSourceHost returns the client holding the source data.
func SyncPlanSourceHost(c *Connection, name string) (string, error) {
	return execText(c, "SyncPlan", name, "sourcehost")
}

// SyncPlanSourcePath returns the source directory on the source host.
func SyncPlanSourcePath(c *Connection, name string) (string, error) {
	return execText(c, "SyncPlan", name, "sourcepath")
}

// SyncPlanSetSourcePath sets the source directory on the source host.
func SyncPlanSetSourcePath(c *Connection, name, path string) error {
	return execOK(c, "SyncPlan", name, "sourcepath", path)
}

// SyncPlanTargetHost returns the client the data is synced to.
func SyncPlanTargetHost(c *Connection, name string) (string, error) {
	return execText(c, "SyncPlan", name, "targethost")
}

// SyncPlanTargetPath returns the target directory on the target host.
func SyncPlanTargetPath(c *Connection, name string) (string, error) {
	return execText(c, "SyncPlan", name, "targetpath")
}

// SyncPlanSetTargetPath sets the target directory on the target host.
func SyncPlanSetTargetPath(c *Connection, name, path string) error {
	return execOK(c, "SyncPlan", name, "targetpath", path)
}

// SyncPlanCancel cancels a running plan. Scheduled plans can only be
// stopped.
func SyncPlanCancel(c *Connection, name string) (bool, error) {
	return execBool(c, "SyncPlan", name, "cancel")
}

// SyncPlanDisable sets the plan to Disabled.
func SyncPlanDisable(c *Connection, name string) error {
	return execOK(c, "SyncPlan", name, "disable")
}

// SyncPlanEnable sets the plan to Enabled.
func SyncPlanEnable(c *Connection, name string) error {
	return execOK(c, "SyncPlan", name, "enable")
}

// SyncPlanRun runs the plan immediately and returns the job id. With
// delete, a delete pass runs on the target directory afterwards.
func SyncPlanRun(c *Connection, name string, delete bool) (string, error) {
	words := []string{"SyncPlan", name, "run"}
	if delete {
		words = append(words, "-delete", "1")
	}
	return execText(c, words...)
}

// SyncPlanSubmit submits the plan for execution at its next synchronize
// event and returns the job id; with now the schedule is overridden and
// the plan starts immediately. The plan must be set to auto-start and
// have events configured, as only the starting time is overridden.
func SyncPlanSubmit(c *Connection, name string, now bool) (string, error) {
	words := []string{"SyncPlan", name, "submit"}
	if now {
		words = append(words, "now")
	}
	return execText(c, words...)
}

// SyncPlanStop removes the plan from the scheduler.
func SyncPlanStop(c *Connection, name string) (bool, error) {
	return execBool(c, "SyncPlan", name, "stop")
}

// SyncPlan addresses one synchronize plan by name.
type SyncPlan struct {
	resource
}

func NewSyncPlan(c *Connection, name string) SyncPlan {
	return SyncPlan{resource{c, name}}
}

func (p SyncPlan) Describe() (string, error) {
	return SyncPlanDescribe(p.conn, p.name)
}

func (p SyncPlan) Disabled() (bool, error) {
	return SyncPlanDisabled(p.conn, p.name)
}

func (p SyncPlan) Enabled() (bool, error) {
	return SyncPlanEnabled(p.conn, p.name)
}

func (p SyncPlan) SourceHost() (string, error) {
	return SyncPlanSourceHost(p.conn, p.name)
}

func (p SyncPlan) SourcePath() (string, error) {
	return SyncPlanSourcePath(p.conn, p.name)
}

func (p SyncPlan) SetSourcePath(path string) error {
	return SyncPlanSetSourcePath(p.conn, p.name, path)
}

func (p SyncPlan) TargetHost() (string, error) {
	return SyncPlanTargetHost(p.conn, p.name)
}

func (p SyncPlan) TargetPath() (string, error) {
	return SyncPlanTargetPath(p.conn, p.name)
}

func (p SyncPlan) SetTargetPath(path string) error {
	return SyncPlanSetTargetPath(p.conn, p.name, path)
}

func (p SyncPlan) Cancel() (bool, error) {
	return SyncPlanCancel(p.conn, p.name)
}

func (p SyncPlan) Disable() error {
	return SyncPlanDisable(p.conn, p.name)
}

func (p SyncPlan) Enable() error {
	return SyncPlanEnable(p.conn, p.name)
}

func (p SyncPlan) Run(delete bool) (string, error) {
	return SyncPlanRun(p.conn, p.name, delete)
}

func (p SyncPlan) Submit(now bool) (string, error) {
	return SyncPlanSubmit(p.conn, p.name, now)
}

func (p SyncPlan) Stop() (bool, error) {
	return SyncPlanStop(p.conn, p.name)
}

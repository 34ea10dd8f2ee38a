package awp5

// ArchivePlanNames lists all configured archive plans.
func ArchivePlanNames(c *Connection) ([]string, error) {
	return execNames(c, "ArchivePlan", "names")
}

// ArchivePlanCreate creates an archive plan with the given description
// and returns its name. The new plan uses the Default-Archive pool and
// database until configured otherwise.
func ArchivePlanCreate(c *Connection, description string) (string, error) {
	return execText(c, "ArchivePlan", "create", description)
}

// ArchivePlanDescribe returns the human-readable plan description.
func ArchivePlanDescribe(c *Connection, name string) (string, error) {
	return execText(c, "ArchivePlan", name, "describe")
}

// ArchivePlanEnabled reports whether the plan is enabled.
func ArchivePlanEnabled(c *Connection, name string) (bool, error) {
	return execBool(c, "ArchivePlan", name, "enabled")
}

// ArchivePlanDisabled reports whether the plan is disabled.
func ArchivePlanDisabled(c *Connection, name string) (bool, error) {
	return execBool(c, "ArchivePlan", name, "disabled")
}

// ArchivePlanIncrLevel reports whether the plan runs incremental rather
// than full.
func ArchivePlanIncrLevel(c *Connection, name string) (bool, error) {
	return execBool(c, "ArchivePlan", name, "incrlevel")
}

// ArchivePlanAutoStart reports whether the plan is set to autostart.
func ArchivePlanAutoStart(c *Connection, name string) (bool, error) {
	return execBool(c, "ArchivePlan", name, "autostart")
}

// ArchivePlanCancel cancels a running plan. Scheduled plans can only be
// stopped.
func ArchivePlanCancel(c *Connection, name string) (bool, error) {
	return execBool(c, "ArchivePlan", name, "cancel")
}

// ArchivePlanDatabase returns the archive index database the plan is
// configured to use, empty when none is set.
func ArchivePlanDatabase(c *Connection, name string) (string, error) {
	return execText(c, "ArchivePlan", name, "database")
}

// ArchivePlanSetDatabase points the plan at an existing archive index
// database. A plan without a database fails its archive jobs.
func ArchivePlanSetDatabase(c *Connection, name, database string) error {
	return execOK(c, "ArchivePlan", name, "database", database)
}

// ArchivePlanDeleteFiles reports whether the plan deletes files after a
// successful archive job.
func ArchivePlanDeleteFiles(c *Connection, name string) (bool, error) {
	return execBool(c, "ArchivePlan", name, "deletefiles")
}

// ArchivePlanSetDeleteFiles sets whether to delete files after a
// successful archive job; folders are kept (see deleteall).
func ArchivePlanSetDeleteFiles(c *Connection, name string, delete bool) error {
	return execOK(c, "ArchivePlan", name, "deletefiles", boolArg(delete))
}

// ArchivePlanDeleteAll reports whether the plan deletes files and
// folders after a successful archive job.
func ArchivePlanDeleteAll(c *Connection, name string) (bool, error) {
	return execBool(c, "ArchivePlan", name, "deleteall")
}

// ArchivePlanSetDeleteAll sets whether to delete both files and folders
// after a successful archive job.
func ArchivePlanSetDeleteAll(c *Connection, name string, delete bool) error {
	return execOK(c, "ArchivePlan", name, "deleteall", boolArg(delete))
}

// ArchivePlanDisable sets the plan to Disabled.
func ArchivePlanDisable(c *Connection, name string) error {
	return execOK(c, "ArchivePlan", name, "disable")
}

// ArchivePlanEnable sets the plan to Enabled.
func ArchivePlanEnable(c *Connection, name string) error {
	return execOK(c, "ArchivePlan", name, "enable")
}

// ArchivePlanPool returns the media pool the plan writes to, empty when
// none is set.
func ArchivePlanPool(c *Connection, name string) (string, error) {
	return execText(c, "ArchivePlan", name, "pool")
}

// ArchivePlanSetPool points the plan at an existing archive media pool.
// A plan without a pool fails its archive jobs.
func ArchivePlanSetPool(c *Connection, name, pool string) error {
	return execOK(c, "ArchivePlan", name, "pool", pool)
}

// ArchivePlanRun runs the plan immediately and returns the job id. With
// delete, a delete pass runs on the target directories afterwards.
func ArchivePlanRun(c *Connection, name string, delete bool) (string, error) {
	words := []string{"ArchivePlan", name, "run"}
	if delete {
		words = append(words, "-delete", "1")
	}
	return execText(c, words...)
}

// ArchivePlanStop removes the plan from the scheduler.
func ArchivePlanStop(c *Connection, name string) (bool, error) {
	return execBool(c, "ArchivePlan", name, "stop")
}

// ArchivePlanSubmit submits the plan for execution at its next archive
// event and returns the job id; with now the schedule is overridden and
// the plan starts immediately.
func ArchivePlanSubmit(c *Connection, name string, now bool) (string, error) {
	words := []string{"ArchivePlan", name, "submit"}
	if now {
		words = append(words, "now")
	}
	return execText(c, words...)
}

// ArchivePlanVerify re-runs the post-archive tasks (verify, clip
// generation, deletion) for files on client archived by job, and
// returns the verify job id.
func ArchivePlanVerify(c *Connection, name, client, job string) (string, error) {
	return execText(c, "ArchivePlan", name, "verify", client, job)
}

func boolArg(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ArchivePlan addresses one archive plan by name.
type ArchivePlan struct {
	resource
}

func NewArchivePlan(c *Connection, name string) ArchivePlan {
	return ArchivePlan{resource{c, name}}
}

func (p ArchivePlan) Describe() (string, error) {
	return ArchivePlanDescribe(p.conn, p.name)
}

func (p ArchivePlan) Enabled() (bool, error) {
	return ArchivePlanEnabled(p.conn, p.name)
}

func (p ArchivePlan) Disabled() (bool, error) {
	return ArchivePlanDisabled(p.conn, p.name)
}

func (p ArchivePlan) IncrLevel() (bool, error) {
	return ArchivePlanIncrLevel(p.conn, p.name)
}

func (p ArchivePlan) AutoStart() (bool, error) {
	return ArchivePlanAutoStart(p.conn, p.name)
}

func (p ArchivePlan) Cancel() (bool, error) {
	return ArchivePlanCancel(p.conn, p.name)
}

func (p ArchivePlan) Database() (string, error) {
	return ArchivePlanDatabase(p.conn, p.name)
}

func (p ArchivePlan) SetDatabase(database string) error {
	return ArchivePlanSetDatabase(p.conn, p.name, database)
}

func (p ArchivePlan) DeleteFiles() (bool, error) {
	return ArchivePlanDeleteFiles(p.conn, p.name)
}

func (p ArchivePlan) SetDeleteFiles(delete bool) error {
	return ArchivePlanSetDeleteFiles(p.conn, p.name, delete)
}

func (p ArchivePlan) DeleteAll() (bool, error) {
	return ArchivePlanDeleteAll(p.conn, p.name)
}

func (p ArchivePlan) SetDeleteAll(delete bool) error {
	return ArchivePlanSetDeleteAll(p.conn, p.name, delete)
}

func (p ArchivePlan) Disable() error {
	return ArchivePlanDisable(p.conn, p.name)
}

func (p ArchivePlan) Enable() error {
	return ArchivePlanEnable(p.conn, p.name)
}

func (p ArchivePlan) Pool() (string, error) {
	return ArchivePlanPool(p.conn, p.name)
}

func (p ArchivePlan) SetPool(pool string) error {
	return ArchivePlanSetPool(p.conn, p.name, pool)
}

func (p ArchivePlan) Run(delete bool) (string, error) {
	return ArchivePlanRun(p.conn, p.name, delete)
}

func (p ArchivePlan) Stop() (bool, error) {
	return ArchivePlanStop(p.conn, p.name)
}

func (p ArchivePlan) Submit(now bool) (string, error) {
	return ArchivePlanSubmit(p.conn, p.name, now)
}

func (p ArchivePlan) Verify(client, job string) (string, error) {
	return ArchivePlanVerify(p.conn, p.name, client, job)
}

package awp5

// BackupPlanNames lists all configured backup plans. Backup plans are
// query-only at the CLI level; they are maintained in the P5 web GUI.
func BackupPlanNames(c *Connection) ([]string, error) {
	return execNames(c, "BackupPlan", "names")
}

// BackupPlanDescribe returns the human-readable plan description.
func BackupPlanDescribe(c *Connection, name string) (string, error) {
	return execText(c, "BackupPlan", name, "describe")
}

// BackupPlanDisabled reports whether the plan is disabled.
func BackupPlanDisabled(c *Connection, name string) (bool, error) {
	return execBool(c, "BackupPlan", name, "disabled")
}

// BackupPlanEnabled reports whether the plan is enabled.
func BackupPlanEnabled(c *Connection, name string) (bool, error) {
	return execBool(c, "BackupPlan", name, "enabled")
}

// BackupPlanCancel cancels a running plan. Scheduled plans can only be
// stopped.
func BackupPlanCancel(c *Connection, name string) (bool, error) {
	return execBool(c, "BackupPlan", name, "cancel")
}

// BackupPlanDisable sets the plan to Disabled.
func BackupPlanDisable(c *Connection, name string) error {
	return execOK(c, "BackupPlan", name, "disable")
}

// BackupPlanEnable sets the plan to Enabled.
func BackupPlanEnable(c *Connection, name string) error {
	return execOK(c, "BackupPlan", name, "enable")
}

// BackupPlanSubmit submits the plan for execution at its next backup
// event and returns the job id; with now the schedule is overridden and
// the plan starts immediately.
func BackupPlanSubmit(c *Connection, name string, now bool) (string, error) {
	words := []string{"BackupPlan", name, "submit"}
	if now {
		words = append(words, "now")
	}
	return execText(c, words...)
}

// BackupPlanStop removes the plan from the scheduler.
func BackupPlanStop(c *Connection, name string) (bool, error) {
	return execBool(c, "BackupPlan", name, "stop")
}

// BackupPlan addresses one backup plan by name.
type BackupPlan struct {
	resource
}

func NewBackupPlan(c *Connection, name string) BackupPlan {
	return BackupPlan{resource{c, name}}
}

func (p BackupPlan) Describe() (string, error) {
	return BackupPlanDescribe(p.conn, p.name)
}

func (p BackupPlan) Disabled() (bool, error) {
	return BackupPlanDisabled(p.conn, p.name)
}

func (p BackupPlan) Enabled() (bool, error) {
	return BackupPlanEnabled(p.conn, p.name)
}

func (p BackupPlan) Cancel() (bool, error) {
	return BackupPlanCancel(p.conn, p.name)
}

func (p BackupPlan) Disable() error {
	return BackupPlanDisable(p.conn, p.name)
}

func (p BackupPlan) Enable() error {
	return BackupPlanEnable(p.conn, p.name)
}

func (p BackupPlan) Submit(now bool) (string, error) {
	return BackupPlanSubmit(p.conn, p.name, now)
}

func (p BackupPlan) Stop() (bool, error) {
	return BackupPlanStop(p.conn, p.name)
}

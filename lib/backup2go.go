package awp5

import "strconv"

// Backup2GoUnlimited is the maxrunning reply for templates without a
// workstation limit.
const Backup2GoUnlimited = -1

// Backup2GoNames lists the Backup2Go workstation templates. Template
// commands run against the Backup2Go server.
func Backup2GoNames(c *Connection) ([]string, error) {
	return execNames(c, "Backup2Go", "names")
}

// Backup2GoDescribe returns the human-readable template description.
func Backup2GoDescribe(c *Connection, name string) (string, error) {
	return execText(c, "Backup2Go", name, "describe")
}

// Backup2GoDisabled reports whether the template is disabled.
func Backup2GoDisabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Backup2Go", name, "disabled")
}

// Backup2GoEnabled reports whether the template is enabled.
func Backup2GoEnabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Backup2Go", name, "enabled")
}

// Backup2GoDisable sets the template to Disabled.
func Backup2GoDisable(c *Connection, name string) error {
	return execOK(c, "Backup2Go", name, "disable")
}

// Backup2GoEnable sets the template to Enabled.
func Backup2GoEnable(c *Connection, name string) error {
	return execOK(c, "Backup2Go", name, "enable")
}

// Backup2GoCleanup purges the selected Backup2Go areas. The work runs
// as an internally queued background job; the command does not wait for
// it.
func Backup2GoCleanup(c *Connection, snapshots, trashes bool) error {
	words := []string{"Backup2Go", "cleanup"}
	if snapshots {
		words = append(words, "snapshots")
	}
	if trashes {
		words = append(words, "trashes")
	}
	return execOK(c, words...)
}

// Backup2GoMaxRunning returns the maximum number of concurrently active
// workstations for the template, Backup2GoUnlimited when unlimited.
func Backup2GoMaxRunning(c *Connection, name string) (int, error) {
	return execInt(c, "Backup2Go", name, "maxrunning")
}

// Backup2GoSetMaxRunning sets the maximum number of concurrently active
// workstations for the template.
func Backup2GoSetMaxRunning(c *Connection, name string, count int) error {
	return execOK(c, "Backup2Go", name, "maxrunning", strconv.Itoa(count))
}

// Backup2Go addresses one Backup2Go workstation template by name.
type Backup2Go struct {
	resource
}

func NewBackup2Go(c *Connection, name string) Backup2Go {
	return Backup2Go{resource{c, name}}
}

func (t Backup2Go) Describe() (string, error) {
	return Backup2GoDescribe(t.conn, t.name)
}

func (t Backup2Go) Disabled() (bool, error) {
	return Backup2GoDisabled(t.conn, t.name)
}

func (t Backup2Go) Enabled() (bool, error) {
	return Backup2GoEnabled(t.conn, t.name)
}

func (t Backup2Go) Disable() error {
	return Backup2GoDisable(t.conn, t.name)
}

func (t Backup2Go) Enable() error {
	return Backup2GoEnable(t.conn, t.name)
}

func (t Backup2Go) MaxRunning() (int, error) {
	return Backup2GoMaxRunning(t.conn, t.name)
}

func (t Backup2Go) SetMaxRunning(count int) error {
	return Backup2GoSetMaxRunning(t.conn, t.name, count)
}

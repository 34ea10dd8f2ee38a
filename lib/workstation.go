package awp5

import (
	"strconv"
	"time"
)

// WorkstationNames lists the Backup2Go workstation records of this
// server. Workstation commands run against a Backup2Go server; each
// record describes one workstation backing up to the server.
func WorkstationNames(c *Connection) ([]string, error) {
	return execNames(c, "Workstation", "names")
}

// WorkstationDescribe returns the human-readable description of the
// workstation, or the <empty> sentinel when none is assigned.
func WorkstationDescribe(c *Connection, name string) (string, error) {
	return execText(c, "Workstation", name, "describe")
}

// WorkstationDisabled reports whether the workstation record is
// disabled.
func WorkstationDisabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Workstation", name, "disabled")
}

// WorkstationEnabled reports whether the workstation record is enabled.
func WorkstationEnabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Workstation", name, "enabled")
}

// WorkstationHostID returns the machine id the workstation is
// registered under.
func WorkstationHostID(c *Connection, name string) (string, error) {
	return execText(c, "Workstation", name, "hostid")
}

// WorkstationLastBegin returns the start time of the last backup of the
// workstation.
func WorkstationLastBegin(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Workstation", name, "lastbegin")
}

// WorkstationLastEnd returns the end time of the last successful backup
// of the workstation. An end older than WorkstationLastBegin indicates
// an interrupted backup.
func WorkstationLastEnd(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Workstation", name, "lastend")
}

// WorkstationLastError returns the error message of the last backup run
// of the workstation, or the <empty> sentinel when it completed without
// error.
func WorkstationLastError(c *Connection, name string) (string, error) {
	return execText(c, "Workstation", name, "lasterror")
}

// WorkstationNextRun returns the start time of the next anticipated
// backup of the workstation, zero when none is scheduled.
func WorkstationNextRun(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Workstation", name, "nextrun")
}

// WorkstationPeerIP returns the last known IP address of the
// workstation in dot notation, or the <empty> sentinel when the
// workstation has never connected to the server.
func WorkstationPeerIP(c *Connection, name string) (string, error) {
	return execText(c, "Workstation", name, "peerip")
}

// WorkstationSnapshots returns the ids of the snapshots kept for the
// workstation. A non-zero since limits the listing to snapshots taken
// since that time.
func WorkstationSnapshots(c *Connection, name string, since time.Time) ([]string, error) {
	words := []string{"Workstation", name, "snapshots"}
	if !since.IsZero() {
		words = append(words, strconv.FormatInt(since.Unix(), 10))
	}
	return execNames(c, words...)
}

// WorkstationSnapSize returns the allocated size in KBytes of the data
// kept for the workstation. On link based snapshots the sizes of the
// current state and all given snapshots are summed up; on native
// snapshots (ZFS, BTRFS) at most one snapshot id may be given and its
// logical size is returned. This may be a lengthy operation, depending
// on the number of files and snapshots.
func WorkstationSnapSize(c *Connection, name string, snapshots ...string) (int64, error) {
	words := append([]string{"Workstation", name, "snapsize"}, snapshots...)
	return execInt64(c, words...)
}

// WorkstationTotalFiles returns the number of files transferred from
// the workstation in the last backup operation.
func WorkstationTotalFiles(c *Connection, name string) (int64, error) {
	return execInt64(c, "Workstation", name, "totalfiles")
}

// WorkstationTotalKBytes returns the number of KBytes transferred from
// the workstation in the last backup operation.
func WorkstationTotalKBytes(c *Connection, name string) (int64, error) {
	return execInt64(c, "Workstation", name, "totalkbytes")
}

// WorkstationRetainTime returns the retention time for workstation
// snapshots in seconds.
func WorkstationRetainTime(c *Connection, name string) (int, error) {
	return execInt(c, "Workstation", name, "retaintime")
}

// WorkstationTemplate returns the template id used for the workstation,
// or the <empty> sentinel when none is assigned.
func WorkstationTemplate(c *Connection, name string) (string, error) {
	return execText(c, "Workstation", name, "template")
}

// WorkstationConfigure connects to the remote workstation at host and
// port and creates a workstation record on the server for its machine
// id, or reuses an existing one, returning the record name. The
// workstation is seeded with a unique login token shared with the
// server, so neither username nor password is stored on the
// workstation. A non-empty template forces that template; otherwise the
// generic template is used. Failures to reach or log in to the
// workstation come back as ErrPeerUnreachable, ErrPeerCredentials or
// ErrPeerTemplate.
func WorkstationConfigure(c *Connection, host string, port int, username, password, template string) (string, error) {
	return execConfigure(c, "Workstation", "configure", host, strconv.Itoa(port), username, password, template)
}

// WorkstationDisable sets the workstation record to Disabled.
func WorkstationDisable(c *Connection, name string) error {
	return execOK(c, "Workstation", name, "disable")
}

// WorkstationEnable sets the workstation record to Enabled.
func WorkstationEnable(c *Connection, name string) error {
	return execOK(c, "Workstation", name, "enable")
}

// WorkstationLocalName returns the workstation id of the machine the
// connection points at, or the unknown sentinel. Unlike the other
// workstation commands this one runs on the workstation itself, not on
// the Backup2Go server.
func WorkstationLocalName(c *Connection) (string, error) {
	return execText(c, "Workstation", "name")
}

// Workstation addresses one Backup2Go workstation record by name, as
// seen from the Backup2Go server the connection points at.
type Workstation struct {
	resource
}

func NewWorkstation(c *Connection, name string) Workstation {
	return Workstation{resource{c, name}}
}

func (w Workstation) Describe() (string, error) {
	return WorkstationDescribe(w.conn, w.name)
}

func (w Workstation) Disabled() (bool, error) {
	return WorkstationDisabled(w.conn, w.name)
}

func (w Workstation) Enabled() (bool, error) {
	return WorkstationEnabled(w.conn, w.name)
}

func (w Workstation) HostID() (string, error) {
	return WorkstationHostID(w.conn, w.name)
}

func (w Workstation) LastBegin() (time.Time, error) {
	return WorkstationLastBegin(w.conn, w.name)
}

func (w Workstation) LastEnd() (time.Time, error) {
	return WorkstationLastEnd(w.conn, w.name)
}

func (w Workstation) LastError() (string, error) {
	return WorkstationLastError(w.conn, w.name)
}

func (w Workstation) NextRun() (time.Time, error) {
	return WorkstationNextRun(w.conn, w.name)
}

func (w Workstation) PeerIP() (string, error) {
	return WorkstationPeerIP(w.conn, w.name)
}

func (w Workstation) Snapshots(since time.Time) ([]string, error) {
	return WorkstationSnapshots(w.conn, w.name, since)
}

func (w Workstation) SnapSize(snapshots ...string) (int64, error) {
	return WorkstationSnapSize(w.conn, w.name, snapshots...)
}

func (w Workstation) TotalFiles() (int64, error) {
	return WorkstationTotalFiles(w.conn, w.name)
}

func (w Workstation) TotalKBytes() (int64, error) {
	return WorkstationTotalKBytes(w.conn, w.name)
}

func (w Workstation) RetainTime() (int, error) {
	return WorkstationRetainTime(w.conn, w.name)
}

func (w Workstation) Template() (string, error) {
	return WorkstationTemplate(w.conn, w.name)
}

func (w Workstation) Disable() error {
	return WorkstationDisable(w.conn, w.name)
}

func (w Workstation) Enable() error {
	return WorkstationEnable(w.conn, w.name)
}

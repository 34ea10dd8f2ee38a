package awp5

import (
	"strconv"
	"time"
)

// Result codes of ServerPing.
const (
	ServerPingWrongCredentials = -2
	ServerPingNetworkProblem   = -1
	ServerPingOK               = 1
)

// ServerNames lists the Backup2Go server records of this workstation.
// Server commands run against a Backup2Go workstation; each record
// describes one Backup2Go server the workstation backs up to.
func ServerNames(c *Connection) ([]string, error) {
	return execNames(c, "Server", "names")
}

// ServerCreate creates an unconfigured server record and returns its id.
func ServerCreate(c *Connection) (string, error) {
	return execText(c, "Server", "create")
}

// ServerConfigure creates a server record, or reuses an existing one,
// and configures its connection parameters in a single call, returning
// the record id. A non-empty template forces that server-side template;
// otherwise the default template is used. Failures to reach or log in
// to the server come back as ErrPeerUnreachable, ErrPeerCredentials or
// ErrPeerTemplate.
func ServerConfigure(c *Connection, host string, port int, username, password, template string) (string, error) {
	return execConfigure(c, "Server", "configure", host, strconv.Itoa(port), username, password, template)
}

// ServerDelete deletes the server record, stopping any scheduled job,
// and reports whether it was deleted. A record with running jobs is not
// deleted.
func ServerDelete(c *Connection, name string) (bool, error) {
	return execBool(c, "Server", name, "delete")
}

// ServerDisabled reports whether the server record is disabled.
func ServerDisabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Server", name, "disabled")
}

// ServerEnabled reports whether the server record is enabled.
func ServerEnabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Server", name, "enabled")
}

// ServerLastBegin returns the start time of the last backup to the
// server.
func ServerLastBegin(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Server", name, "lastbegin")
}

// ServerLastEnd returns the end time of the last successful backup to
// the server. An end older than ServerLastBegin indicates an
// interrupted backup.
func ServerLastEnd(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Server", name, "lastend")
}

// ServerNextRun returns the start time of the next scheduled backup to
// the server, zero when none is scheduled.
func ServerNextRun(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Server", name, "nextrun")
}

// ServerTemplate returns the server-side template id used for backups
// to the server, or the <empty> sentinel when none is assigned.
func ServerTemplate(c *Connection, name string) (string, error) {
	return execText(c, "Server", name, "template")
}

// ServerCPUThrottle returns the workstation CPU throttle in percent.
func ServerCPUThrottle(c *Connection, name string) (int, error) {
	return execInt(c, "Server", name, "cputhrottle")
}

// ServerSetCPUThrottle sets the workstation CPU throttle in percent,
// 0 to 100.
func ServerSetCPUThrottle(c *Connection, name string, percent int) error {
	return execOK(c, "Server", name, "cputhrottle", strconv.Itoa(percent))
}

// ServerHostname returns the host name or IP address of the server.
func ServerHostname(c *Connection, name string) (string, error) {
	return execText(c, "Server", name, "hostname")
}

// ServerSetHostname sets the host name or IP address of the server.
func ServerSetHostname(c *Connection, name, hostname string) error {
	return execOK(c, "Server", name, "hostname", hostname)
}

// ServerDisable sets the record to Disabled, stopping any scheduled job.
func ServerDisable(c *Connection, name string) error {
	return execOK(c, "Server", name, "disable")
}

// ServerEnable sets the record to Enabled, scheduling the backup job.
func ServerEnable(c *Connection, name string) error {
	return execOK(c, "Server", name, "enable")
}

// ServerDataEncryption reports whether files are stored encrypted on
// the server.
func ServerDataEncryption(c *Connection, name string) (bool, error) {
	return execBool(c, "Server", name, "dataencryption")
}

// ServerSetDataEncryption sets whether files are stored encrypted on
// the server.
func ServerSetDataEncryption(c *Connection, name string, encrypt bool) error {
	return execOK(c, "Server", name, "dataencryption", boolArg(encrypt))
}

// ServerNetEncryption reports whether traffic to the server is
// encrypted.
func ServerNetEncryption(c *Connection, name string) (bool, error) {
	return execBool(c, "Server", name, "netencryption")
}

// ServerSetNetEncryption sets whether traffic to the server is
// encrypted.
func ServerSetNetEncryption(c *Connection, name string, encrypt bool) error {
	return execOK(c, "Server", name, "netencryption", boolArg(encrypt))
}

// ServerNetThrottle returns the bandwidth throttle of the link to the
// server in percent.
func ServerNetThrottle(c *Connection, name string) (int, error) {
	return execInt(c, "Server", name, "netthrottle")
}

// ServerSetNetThrottle sets the bandwidth throttle of the link to the
// server in percent, 0 to 100.
func ServerSetNetThrottle(c *Connection, name string, percent int) error {
	return execOK(c, "Server", name, "netthrottle", strconv.Itoa(percent))
}

// ServerSetPassword sets the password used to authenticate on the
// server.
func ServerSetPassword(c *Connection, name, password string) error {
	return execOK(c, "Server", name, "password", password)
}

// ServerPathList returns the workstation paths configured for backup to
// the server.
func ServerPathList(c *Connection, name string) ([]string, error) {
	reply, err := execReply(c, "Server", name, "pathlist")
	if err != nil {
		return nil, err
	}
	return reply.Paths(), nil
}

// ServerSetPathList sets the workstation paths to back up to the
// server.
func ServerSetPathList(c *Connection, name string, paths ...string) error {
	words := append([]string{"Server", name, "pathlist"}, paths...)
	return execOK(c, words...)
}

// ServerPing tests the connection to the server and returns one of the
// ServerPing constants. timeoutSeconds bounds the wait; zero keeps the
// server default of 600 seconds.
func ServerPing(c *Connection, name string, timeoutSeconds int) (int, error) {
	timeout := ""
	if timeoutSeconds > 0 {
		timeout = strconv.Itoa(timeoutSeconds)
	}
	return execInt(c, "Server", name, "ping", timeout)
}

// ServerPort returns the TCP port of the server.
func ServerPort(c *Connection, name string) (int, error) {
	return execInt(c, "Server", name, "port")
}

// ServerSetPort sets the TCP port of the server.
func ServerSetPort(c *Connection, name string, port int) error {
	return execOK(c, "Server", name, "port", strconv.Itoa(port))
}

// ServerReschedule returns the number of hours after which a regularly
// completed backup job is rescheduled. Jobs that do not complete
// regularly are rescheduled immediately.
func ServerReschedule(c *Connection, name string) (int, error) {
	return execInt(c, "Server", name, "reschedule")
}

// ServerSetReschedule sets the number of hours after which a regularly
// completed backup job is rescheduled.
func ServerSetReschedule(c *Connection, name string, hours int) error {
	return execOK(c, "Server", name, "reschedule", strconv.Itoa(hours))
}

// ServerSubmit submits the workstation backup job to the server and
// returns the job id; with now the schedule is overridden and the
// backup starts immediately.
func ServerSubmit(c *Connection, name string, now bool) (string, error) {
	words := []string{"Server", name, "submit"}
	if now {
		words = append(words, "now")
	}
	return execText(c, words...)
}

// ServerUseEvents reports whether the workstation gathers files via the
// file system events facility rather than a linear file system walk.
func ServerUseEvents(c *Connection, name string) (bool, error) {
	return execBool(c, "Server", name, "useevents")
}

// ServerSetUseEvents sets whether the workstation gathers files via the
// file system events facility.
func ServerSetUseEvents(c *Connection, name string, use bool) error {
	return execOK(c, "Server", name, "useevents", boolArg(use))
}

// ServerUseCompression reports whether traffic to the server is
// compressed.
func ServerUseCompression(c *Connection, name string) (bool, error) {
	return execBool(c, "Server", name, "usecompression")
}

// ServerSetUseCompression sets whether traffic to the server is
// compressed.
func ServerSetUseCompression(c *Connection, name string, compress bool) error {
	return execOK(c, "Server", name, "usecompression", boolArg(compress))
}

// ServerUsername returns the user name used to authenticate on the
// server.
func ServerUsername(c *Connection, name string) (string, error) {
	return execText(c, "Server", name, "username")
}

// ServerSetUsername sets the user name used to authenticate on the
// server.
func ServerSetUsername(c *Connection, name, username string) error {
	return execOK(c, "Server", name, "username", username)
}

// Server addresses one Backup2Go server record by id, as seen from the
// workstation the connection points at.
type Server struct {
	resource
}

func NewServer(c *Connection, name string) Server {
	return Server{resource{c, name}}
}

func (s Server) Delete() (bool, error) {
	return ServerDelete(s.conn, s.name)
}

func (s Server) Disabled() (bool, error) {
	return ServerDisabled(s.conn, s.name)
}

func (s Server) Enabled() (bool, error) {
	return ServerEnabled(s.conn, s.name)
}

func (s Server) LastBegin() (time.Time, error) {
	return ServerLastBegin(s.conn, s.name)
}

func (s Server) LastEnd() (time.Time, error) {
	return ServerLastEnd(s.conn, s.name)
}

func (s Server) NextRun() (time.Time, error) {
	return ServerNextRun(s.conn, s.name)
}

func (s Server) Template() (string, error) {
	return ServerTemplate(s.conn, s.name)
}

func (s Server) CPUThrottle() (int, error) {
	return ServerCPUThrottle(s.conn, s.name)
}

func (s Server) SetCPUThrottle(percent int) error {
	return ServerSetCPUThrottle(s.conn, s.name, percent)
}

func (s Server) Hostname() (string, error) {
	return ServerHostname(s.conn, s.name)
}

func (s Server) SetHostname(hostname string) error {
	return ServerSetHostname(s.conn, s.name, hostname)
}

func (s Server) Disable() error {
	return ServerDisable(s.conn, s.name)
}

func (s Server) Enable() error {
	return ServerEnable(s.conn, s.name)
}

func (s Server) DataEncryption() (bool, error) {
	return ServerDataEncryption(s.conn, s.name)
}

func (s Server) SetDataEncryption(encrypt bool) error {
	return ServerSetDataEncryption(s.conn, s.name, encrypt)
}

func (s Server) NetEncryption() (bool, error) {
	return ServerNetEncryption(s.conn, s.name)
}

func (s Server) SetNetEncryption(encrypt bool) error {
	return ServerSetNetEncryption(s.conn, s.name, encrypt)
}

func (s Server) NetThrottle() (int, error) {
	return ServerNetThrottle(s.conn, s.name)
}

func (s Server) SetNetThrottle(percent int) error {
	return ServerSetNetThrottle(s.conn, s.name, percent)
}

func (s Server) SetPassword(password string) error {
	return ServerSetPassword(s.conn, s.name, password)
}

func (s Server) PathList() ([]string, error) {
	return ServerPathList(s.conn, s.name)
}

func (s Server) SetPathList(paths ...string) error {
	return ServerSetPathList(s.conn, s.name, paths...)
}

func (s Server) Ping(timeoutSeconds int) (int, error) {
	return ServerPing(s.conn, s.name, timeoutSeconds)
}

func (s Server) Port() (int, error) {
	return ServerPort(s.conn, s.name)
}

func (s Server) SetPort(port int) error {
	return ServerSetPort(s.conn, s.name, port)
}

func (s Server) Reschedule() (int, error) {
	return ServerReschedule(s.conn, s.name)
}

func (s Server) SetReschedule(hours int) error {
	return ServerSetReschedule(s.conn, s.name, hours)
}

func (s Server) Submit(now bool) (string, error) {
	return ServerSubmit(s.conn, s.name, now)
}

func (s Server) UseEvents() (bool, error) {
	return ServerUseEvents(s.conn, s.name)
}

func (s Server) SetUseEvents(use bool) error {
	return ServerSetUseEvents(s.conn, s.name, use)
}

func (s Server) UseCompression() (bool, error) {
	return ServerUseCompression(s.conn, s.name)
}

func (s Server) SetUseCompression(compress bool) error {
	return ServerSetUseCompression(s.conn, s.name, compress)
}

func (s Server) Username() (string, error) {
	return ServerUsername(s.conn, s.name)
}

func (s Server) SetUsername(username string) error {
	return ServerSetUsername(s.conn, s.name, username)
}

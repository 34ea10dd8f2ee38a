package awp5

import (
	"time"
)

// SrvInfoBuildStamp returns the build time-stamp of the P5 release.
func SrvInfoBuildStamp(c *Connection) (string, error) {
	return execText(c, "srvinfo", "buildstamp")
}

// SrvInfoAddress returns the IP address of the P5 host.
func SrvInfoAddress(c *Connection) (string, error) {
	return execText(c, "srvinfo", "address")
}

// SrvInfoHostID returns the host ID shown in the P5 about box.
func SrvInfoHostID(c *Connection) (string, error) {
	return execText(c, "srvinfo", "hostid")
}

// SrvInfoHostname returns the host name of the P5 host.
func SrvInfoHostname(c *Connection) (string, error) {
	return execText(c, "srvinfo", "hostname")
}

// SrvInfoLexxVers returns the P5 application version as an X.Y.Z number.
func SrvInfoLexxVers(c *Connection) (string, error) {
	return execText(c, "srvinfo", "lexxvers")
}

// SrvInfoPlatform returns the OS platform of the P5 host: linux,
// solaris, windows or macosx.
func SrvInfoPlatform(c *Connection) (string, error) {
	return execText(c, "srvinfo", "platform")
}

// SrvInfoPort returns the TCP port of the P5 server.
func SrvInfoPort(c *Connection) (int, error) {
	return execInt(c, "srvinfo", "port")
}

// SrvInfoServerName returns the name of the P5 server process, currently
// always "lexxsrv".
func SrvInfoServerName(c *Connection) (string, error) {
	return execText(c, "srvinfo", "server")
}

// SrvInfoUptime returns how long the P5 server has been running.
func SrvInfoUptime(c *Connection) (time.Duration, error) {
	seconds, err := execInt64(c, "srvinfo", "uptime")
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

// SrvInfoVersion returns the application server version as an X.Y
// number.
func SrvInfoVersion(c *Connection) (string, error) {
	return execText(c, "srvinfo", "version")
}

// SrvInfo queries the current P5 server; it addresses no identifier.
type SrvInfo struct {
	conn *Connection
}

func NewSrvInfo(c *Connection) SrvInfo {
	return SrvInfo{conn: c}
}

func (s SrvInfo) BuildStamp() (string, error) {
	return SrvInfoBuildStamp(s.conn)
}

func (s SrvInfo) Address() (string, error) {
	return SrvInfoAddress(s.conn)
}

func (s SrvInfo) HostID() (string, error) {
	return SrvInfoHostID(s.conn)
}

func (s SrvInfo) Hostname() (string, error) {
	return SrvInfoHostname(s.conn)
}

func (s SrvInfo) LexxVers() (string, error) {
	return SrvInfoLexxVers(s.conn)
}

func (s SrvInfo) Platform() (string, error) {
	return SrvInfoPlatform(s.conn)
}

func (s SrvInfo) Port() (int, error) {
	return SrvInfoPort(s.conn)
}

func (s SrvInfo) ServerName() (string, error) {
	return SrvInfoServerName(s.conn)
}

func (s SrvInfo) Uptime() (time.Duration, error) {
	return SrvInfoUptime(s.conn)
}

func (s SrvInfo) Version() (string, error) {
	return SrvInfoVersion(s.conn)
}

package awp5

import (
	"strconv"
)

// PoolNames lists all configured media pools.
func PoolNames(c *Connection) ([]string, error) {
	return execNames(c, "Pool", "names")
}

// PoolCreate creates a media pool and returns its name. The name must
// not contain blanks or special characters. Options are given as
// key/value word pairs: "usage" (Archive or Backup, default Archive),
// "mediatype" (TAPE or DISK, default TAPE) and "blocksize" (32768 up to
// 524288, in powers of two). The pool is created without parallelism;
// use the web GUI to change that.
func PoolCreate(c *Connection, name string, options ...string) (string, error) {
	return execText(c, append([]string{"Pool", "create", name}, options...)...)
}

// PoolDisabled reports whether the pool is disabled.
func PoolDisabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Pool", name, "disabled")
}

// PoolEnabled reports whether the pool is enabled.
func PoolEnabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Pool", name, "enabled")
}

// PoolDriveCount returns the drives per stream the pool may use.
func PoolDriveCount(c *Connection, name string) (int, error) {
	return execInt(c, "Pool", name, "drivecount")
}

// PoolSetDriveCount sets the drives per stream the pool may use.
func PoolSetDriveCount(c *Connection, name string, count int) error {
	return execOK(c, "Pool", name, "drivecount", strconv.Itoa(count))
}

// PoolMediaType returns TAPE or DISK.
func PoolMediaType(c *Connection, name string) (string, error) {
	return execText(c, "Pool", name, "mediatype")
}

// PoolTotalSize returns the estimated pool capacity in kbytes.
func PoolTotalSize(c *Connection, name string) (int64, error) {
	return execInt64(c, "Pool", name, "totalsize")
}

// PoolUsage returns Archive or Backup.
func PoolUsage(c *Connection, name string) (string, error) {
	return execText(c, "Pool", name, "usage")
}

// PoolUsedSize returns the number of kbytes written to the pool.
func PoolUsedSize(c *Connection, name string) (int64, error) {
	return execInt64(c, "Pool", name, "usedsize")
}

// PoolVolumes lists the volumes labeled for the pool.
func PoolVolumes(c *Connection, name string) ([]string, error) {
	return execNames(c, "Pool", name, "volumes")
}

// Pool addresses one media pool by name.
type Pool struct {
	resource
}

func NewPool(c *Connection, name string) Pool {
	return Pool{resource{c, name}}
}

func (p Pool) Disabled() (bool, error) {
	return PoolDisabled(p.conn, p.name)
}

func (p Pool) Enabled() (bool, error) {
	return PoolEnabled(p.conn, p.name)
}

func (p Pool) DriveCount() (int, error) {
	return PoolDriveCount(p.conn, p.name)
}

func (p Pool) SetDriveCount(count int) error {
	return PoolSetDriveCount(p.conn, p.name, count)
}

func (p Pool) MediaType() (string, error) {
	return PoolMediaType(p.conn, p.name)
}

func (p Pool) TotalSize() (int64, error) {
	return PoolTotalSize(p.conn, p.name)
}

func (p Pool) Usage() (string, error) {
	return PoolUsage(p.conn, p.name)
}

func (p Pool) UsedSize() (int64, error) {
	return PoolUsedSize(p.conn, p.name)
}

func (p Pool) Volumes() ([]string, error) {
	return PoolVolumes(p.conn, p.name)
}

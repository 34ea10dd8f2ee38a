package awp5

import (
	"time"
)

// Media types reported by VolumeMediaType.
const (
	VolumeMediaTypeTape    = "TAPE"
	VolumeMediaTypeDisk    = "DISK"
	VolumeMediaTypeOptical = "OPTICAL"
)

// Volume modes.
const (
	VolumeModeAppendable = "Appendable"
	VolumeModeClosed     = "Closed"
	VolumeModeReadonly   = "Readonly"
	VolumeModeRecyclable = "Recyclable"
	VolumeModeFull       = "Full"
)

// Volume states.
const (
	VolumeStateOK        = "Ok"
	VolumeStateSuspect   = "Suspect"
	VolumeStateOutOfSync = "OutOfSync"
)

// Volume usages.
const (
	VolumeUsageArchive = "Archive"
	VolumeUsageBackup  = "Backup"
	VolumeUsageImport  = "Import"
)

// VolumeNames lists all configured volumes.
func VolumeNames(c *Connection) ([]string, error) {
	return execNames(c, "Volume", "names")
}

// VolumeBarcode returns the volume barcode, empty when none is present.
func VolumeBarcode(c *Connection, name string) (string, error) {
	return execText(c, "Volume", name, "barcode")
}

// VolumeCopyOf returns the name of the volume's clone, or "0" when no
// clone exists.
func VolumeCopyOf(c *Connection, name string) (string, error) {
	return execText(c, "Volume", name, "copyof")
}

// VolumeDateExpires returns the time the volume expires and can be
// relabeled.
func VolumeDateExpires(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Volume", name, "dateexpires")
}

// VolumeDateUsed returns the time the volume was last read or written.
func VolumeDateUsed(c *Connection, name string) (time.Time, error) {
	return execTime(c, "Volume", name, "dateused")
}

// VolumeDisable sets the volume to Disabled.
func VolumeDisable(c *Connection, name string) error {
	return execOK(c, "Volume", name, "disable")
}

// VolumeEnable sets the volume to Enabled.
func VolumeEnable(c *Connection, name string) error {
	return execOK(c, "Volume", name, "enable")
}

// VolumeDisabled reports whether the volume is disabled.
func VolumeDisabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Volume", name, "disabled")
}

// VolumeEnabled reports whether the volume is enabled.
func VolumeEnabled(c *Connection, name string) (bool, error) {
	return execBool(c, "Volume", name, "enabled")
}

// VolumeIsOnline reports whether the volume is accessible, either in
// the media changer or in one of the drives.
func VolumeIsOnline(c *Connection, name string) (bool, error) {
	return execBool(c, "Volume", name, "isonline")
}

// VolumeInventory writes the list of files on an archive volume to
// outputFile ([client:]absolute_path), one record per line; attributes
// select additional tab-separated columns.
func VolumeInventory(c *Connection, name, outputFile string, attributes ...string) (string, error) {
	return execText(c, append([]string{"Volume", name, "inventory", outputFile}, attributes...)...)
}

// VolumeJobs lists the ids of jobs that accessed the volume.
func VolumeJobs(c *Connection, name string) ([]string, error) {
	return execNames(c, "Volume", name, "jobs")
}

// VolumeLabel returns the human-readable volume description.
func VolumeLabel(c *Connection, name string) (string, error) {
	return execText(c, "Volume", name, "label")
}

// VolumeSetLabel sets the volume description.
func VolumeSetLabel(c *Connection, name, label string) error {
	return execOK(c, "Volume", name, "label", label)
}

// VolumeLocation returns the physical volume location as jukebox:slot,
// empty when not set.
func VolumeLocation(c *Connection, name string) (string, error) {
	return execText(c, "Volume", name, "location")
}

// VolumeSetLocation sets the offline location of the volume.
func VolumeSetLocation(c *Connection, name, location string) error {
	return execOK(c, "Volume", name, "location", location)
}

// VolumeMediaType returns one of the VolumeMediaType constants.
func VolumeMediaType(c *Connection, name string) (string, error) {
	return execText(c, "Volume", name, "mediatype")
}

// VolumeMaxSize returns the capacity in kbytes for DISK volumes; other
// media types report zero.
func VolumeMaxSize(c *Connection, name string) (int64, error) {
	return execInt64(c, "Volume", name, "maxsize")
}

// VolumeMode returns one of the VolumeMode constants.
func VolumeMode(c *Connection, name string) (string, error) {
	return execText(c, "Volume", name, "mode")
}

// VolumeSetMode sets the volume mode.
func VolumeSetMode(c *Connection, name, mode string) error {
	return execOK(c, "Volume", name, "mode", mode)
}

// VolumeState returns one of the VolumeState constants.
func VolumeState(c *Connection, name string) (string, error) {
	return execText(c, "Volume", name, "state")
}

// VolumeSetState sets the volume state.
func VolumeSetState(c *Connection, name, state string) error {
	return execOK(c, "Volume", name, "state", state)
}

// VolumeTotalSize returns the estimated volume capacity in kbytes.
func VolumeTotalSize(c *Connection, name string) (int64, error) {
	return execInt64(c, "Volume", name, "totalsize")
}

// VolumeUsage returns one of the VolumeUsage constants.
func VolumeUsage(c *Connection, name string) (string, error) {
	return execText(c, "Volume", name, "usage")
}

// VolumeUseCount returns the number of read/write uses.
func VolumeUseCount(c *Connection, name string) (int64, error) {
	return execInt64(c, "Volume", name, "usecount")
}

// VolumeUsedSize returns the number of kbytes written to the volume.
func VolumeUsedSize(c *Connection, name string) (int64, error) {
	return execInt64(c, "Volume", name, "usedsize")
}

// Volume addresses one labeled medium by name.
type Volume struct {
	resource
}

func NewVolume(c *Connection, name string) Volume {
	return Volume{resource{c, name}}
}

func (v Volume) Barcode() (string, error) {
	return VolumeBarcode(v.conn, v.name)
}

func (v Volume) CopyOf() (string, error) {
	return VolumeCopyOf(v.conn, v.name)
}

func (v Volume) DateExpires() (time.Time, error) {
	return VolumeDateExpires(v.conn, v.name)
}

func (v Volume) DateUsed() (time.Time, error) {
	return VolumeDateUsed(v.conn, v.name)
}

func (v Volume) Disable() error {
	return VolumeDisable(v.conn, v.name)
}

func (v Volume) Enable() error {
	return VolumeEnable(v.conn, v.name)
}

func (v Volume) Disabled() (bool, error) {
	return VolumeDisabled(v.conn, v.name)
}

func (v Volume) Enabled() (bool, error) {
	return VolumeEnabled(v.conn, v.name)
}

func (v Volume) IsOnline() (bool, error) {
	return VolumeIsOnline(v.conn, v.name)
}

func (v Volume) Inventory(outputFile string, attributes ...string) (string, error) {
	return VolumeInventory(v.conn, v.name, outputFile, attributes...)
}

func (v Volume) Jobs() ([]string, error) {
	return VolumeJobs(v.conn, v.name)
}

func (v Volume) Label() (string, error) {
	return VolumeLabel(v.conn, v.name)
}

func (v Volume) SetLabel(label string) error {
	return VolumeSetLabel(v.conn, v.name, label)
}

func (v Volume) Location() (string, error) {
	return VolumeLocation(v.conn, v.name)
}

func (v Volume) SetLocation(location string) error {
	return VolumeSetLocation(v.conn, v.name, location)
}

func (v Volume) MediaType() (string, error) {
	return VolumeMediaType(v.conn, v.name)
}

func (v Volume) MaxSize() (int64, error) {
	return VolumeMaxSize(v.conn, v.name)
}

func (v Volume) Mode() (string, error) {
	return VolumeMode(v.conn, v.name)
}

func (v Volume) SetMode(mode string) error {
	return VolumeSetMode(v.conn, v.name, mode)
}

func (v Volume) State() (string, error) {
	return VolumeState(v.conn, v.name)
}

func (v Volume) SetState(state string) error {
	return VolumeSetState(v.conn, v.name, state)
}

func (v Volume) TotalSize() (int64, error) {
	return VolumeTotalSize(v.conn, v.name)
}

func (v Volume) Usage() (string, error) {
	return VolumeUsage(v.conn, v.name)
}

func (v Volume) UseCount() (int64, error) {
	return VolumeUseCount(v.conn, v.name)
}

func (v Volume) UsedSize() (int64, error) {
	return VolumeUsedSize(v.conn, v.name)
}

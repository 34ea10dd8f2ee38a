package awp5

import (
	"strconv"
	"time"
)

// Statuses of an archive entry.
const (
	ArchiveEntryStatusIndexed = "indexed"
	ArchiveEntryStatusUnknown = "unknown"
)

// ArchiveEntryHandle returns the formatted entry handle for path on
// client, as needed to restore files archived over the P5 web GUI. The
// path is not checked for existence. A non-empty database names the
// archive index the file was indexed in, defaulting to Default-Archive.
func ArchiveEntryHandle(c *Connection, client, path, database string) (string, error) {
	return execText(c, "ArchiveEntry", "handle", client, path, database)
}

// ArchiveEntryBTime returns the archive time of each instance of the
// entry.
func ArchiveEntryBTime(c *Connection, handle string) ([]time.Time, error) {
	return execTimes(c, "ArchiveEntry", handle, "btime")
}

// ArchiveEntryMTime returns the modification time of each instance of
// the entry.
func ArchiveEntryMTime(c *Connection, handle string) ([]time.Time, error) {
	return execTimes(c, "ArchiveEntry", handle, "mtime")
}

// ArchiveEntryMeta returns the value of the given metadata key, one of
// the meta columns of the index the entry is archived in. With an empty
// key the reply lists all keys and their values.
func ArchiveEntryMeta(c *Connection, handle, key string) (string, error) {
	return execText(c, "ArchiveEntry", handle, "meta", key)
}

// ArchiveEntrySetMeta sets metadata key/value pairs on the entry. Every
// key must be a meta column of the index the entry is archived in.
func ArchiveEntrySetMeta(c *Connection, handle string, keyValues ...string) error {
	words := append([]string{"ArchiveEntry", handle, "setmeta"}, keyValues...)
	return execOK(c, words...)
}

// ArchiveEntrySize returns the size in bytes of each instance of the
// entry.
func ArchiveEntrySize(c *Connection, handle string) ([]int64, error) {
	return execInt64s(c, "ArchiveEntry", handle, "size")
}

// ArchiveEntryStatus returns ArchiveEntryStatusIndexed once the entry
// has been archived and its metadata can be queried, or
// ArchiveEntryStatusUnknown while it is still waiting to be archived.
// The other entry methods return invalid values for unknown entries.
func ArchiveEntryStatus(c *Connection, handle string) (string, error) {
	return execText(c, "ArchiveEntry", handle, "status")
}

// ArchiveEntryVolume lists the volumes the entry is stored on. An entry
// can land on several volumes, or several times on one, depending on
// the plan configuration.
func ArchiveEntryVolume(c *Connection, handle string) ([]string, error) {
	return execNames(c, "ArchiveEntry", handle, "volume")
}

// ArchiveEntryClipPath returns the path of the entry's preview clip, or
// the unknown sentinel when it has none.
func ArchiveEntryClipPath(c *Connection, handle string) (string, error) {
	return execText(c, "ArchiveEntry", handle, "clippath")
}

// ArchiveEntrySetClipPath sets the file at newPath as the entry's
// preview clip and returns the clip's new absolute path. The file is
// moved, not copied, into the clip storage of the index. An empty
// newPath deletes the existing clip and the reply is the unknown
// sentinel.
func ArchiveEntrySetClipPath(c *Connection, handle, newPath string) (string, error) {
	if newPath == "" {
		// Braced empty word, the only way to carry an empty argument
		// across the CLI's word join.
		newPath = "{}"
	}
	return execText(c, "ArchiveEntry", handle, "clippath", newPath)
}

// ArchiveEntryClipURL returns the http URL of the entry's preview clip
// on the P5 server at host:port.
func ArchiveEntryClipURL(c *Connection, handle, host string, port int) (string, error) {
	return execText(c, "ArchiveEntry", handle, "clipurl", host, strconv.Itoa(port))
}

// ArchiveEntry addresses one archived file by its opaque entry handle,
// as returned by the ArchiveSelection add calls or ArchiveEntryHandle.
type ArchiveEntry struct {
	resource
}

func NewArchiveEntry(c *Connection, handle string) ArchiveEntry {
	return ArchiveEntry{resource{c, handle}}
}

func (e ArchiveEntry) BTime() ([]time.Time, error) {
	return ArchiveEntryBTime(e.conn, e.name)
}

func (e ArchiveEntry) MTime() ([]time.Time, error) {
	return ArchiveEntryMTime(e.conn, e.name)
}

func (e ArchiveEntry) Meta(key string) (string, error) {
	return ArchiveEntryMeta(e.conn, e.name, key)
}

func (e ArchiveEntry) SetMeta(keyValues ...string) error {
	return ArchiveEntrySetMeta(e.conn, e.name, keyValues...)
}

func (e ArchiveEntry) Size() ([]int64, error) {
	return ArchiveEntrySize(e.conn, e.name)
}

func (e ArchiveEntry) Status() (string, error) {
	return ArchiveEntryStatus(e.conn, e.name)
}

func (e ArchiveEntry) Volume() ([]string, error) {
	return ArchiveEntryVolume(e.conn, e.name)
}

func (e ArchiveEntry) ClipPath() (string, error) {
	return ArchiveEntryClipPath(e.conn, e.name)
}

func (e ArchiveEntry) SetClipPath(newPath string) (string, error) {
	return ArchiveEntrySetClipPath(e.conn, e.name, newPath)
}

func (e ArchiveEntry) ClipURL(host string, port int) (string, error) {
	return ArchiveEntryClipURL(e.conn, e.name, host, port)
}

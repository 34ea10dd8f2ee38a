package awp5

// DefaultArchiveDatabase is the archive index P5 creates out of the box
// and falls back to wherever a database argument is omitted.
const DefaultArchiveDatabase = "Default-Archive"

// Data types of user-defined index keys.
const (
	ArchiveIndexKeyChar    = "C"
	ArchiveIndexKeyNumeric = "N"
)

// ArchiveIndexNames lists all configured archive index databases.
func ArchiveIndexNames(c *Connection) ([]string, error) {
	return execNames(c, "ArchiveIndex", "names")
}

// ArchiveIndexCreate creates an archive index database and returns its
// name. The name must be free of blanks, punctuation and national
// characters; creating an existing index is an error. The description
// may contain any text.
func ArchiveIndexCreate(c *Connection, name, description string) (string, error) {
	return execText(c, "ArchiveIndex", "create", name, description)
}

// ArchiveIndexBackup writes a backup of the index to file on the server
// and returns the backup file name.
func ArchiveIndexBackup(c *Connection, name, file string) (string, error) {
	return execText(c, "ArchiveIndex", name, "backup", file)
}

// ArchiveIndexRestore restores the index from file, which must have been
// produced by ArchiveIndexBackup.
func ArchiveIndexRestore(c *Connection, name, file string) (string, error) {
	return execText(c, "ArchiveIndex", name, "restore", file)
}

// ArchiveIndexAddKey adds a user-defined metadata key of the given type,
// ArchiveIndexKeyChar or ArchiveIndexKeyNumeric, and returns the names
// of all configured keys. The key must be free of blanks, punctuation
// and national characters and at most 15 characters long. Optional
// attribute/value pairs are stored verbatim with the key definition;
// attribute names and values are limited to 15 characters each.
func ArchiveIndexAddKey(c *Connection, name, key, keyType string, attrValues ...string) ([]string, error) {
	words := append([]string{"ArchiveIndex", name, "addkey", key, keyType}, attrValues...)
	return execNames(c, words...)
}

// ArchiveIndexDelKey deletes a user-defined metadata key and returns the
// names of the deleted keys.
func ArchiveIndexDelKey(c *Connection, name, key string) ([]string, error) {
	return execNames(c, "ArchiveIndex", name, "delkey", key)
}

// ArchiveIndexKeys lists the user-defined metadata keys of the index.
func ArchiveIndexKeys(c *Connection, name string) ([]string, error) {
	return execNames(c, "ArchiveIndex", name, "keys")
}

// ArchiveIndexKeyGet returns the value of the given key attribute. With
// an empty attr the reply lists all attributes and their values. Every
// key has at least the type attribute.
func ArchiveIndexKeyGet(c *Connection, name, key, attr string) (string, error) {
	return execText(c, "ArchiveIndex", name, "keyget", key, attr)
}

// ArchiveIndexKeyHas reports whether the key has the given attribute
// defined.
func ArchiveIndexKeyHas(c *Connection, name, key, attr string) (bool, error) {
	return execBool(c, "ArchiveIndex", name, "keyhas", key, attr)
}

// ArchiveIndexKeySet sets a user-given key attribute and reports whether
// it was set; false means the key does not exist or cannot be set. The
// type attribute cannot be changed.
func ArchiveIndexKeySet(c *Connection, name, key, attr, val string) (bool, error) {
	return execBool(c, "ArchiveIndex", name, "keyset", key, attr, val)
}

// ArchiveIndexInventory writes the index contents to outputFile, in
// "client:path" notation with the client part defaulting to localhost,
// and returns the written client:path. One index path per line; each
// attribute adds a TAB-separated column. Attributes are user-defined
// meta keys or the system attributes ppath, volumes, size, handle,
// btime, mtime and ino.
func ArchiveIndexInventory(c *Connection, name, outputFile string, attributes ...string) (string, error) {
	words := append([]string{"ArchiveIndex", name, "inventory", outputFile}, attributes...)
	return execText(c, words...)
}

// ArchiveIndex addresses one archive index database by name. The CLI has
// limited write access to indexes; full control needs the P5 web GUI.
type ArchiveIndex struct {
	resource
}

func NewArchiveIndex(c *Connection, name string) ArchiveIndex {
	return ArchiveIndex{resource{c, name}}
}

func (x ArchiveIndex) Backup(file string) (string, error) {
	return ArchiveIndexBackup(x.conn, x.name, file)
}

func (x ArchiveIndex) Restore(file string) (string, error) {
	return ArchiveIndexRestore(x.conn, x.name, file)
}

func (x ArchiveIndex) AddKey(key, keyType string, attrValues ...string) ([]string, error) {
	return ArchiveIndexAddKey(x.conn, x.name, key, keyType, attrValues...)
}

func (x ArchiveIndex) DelKey(key string) ([]string, error) {
	return ArchiveIndexDelKey(x.conn, x.name, key)
}

func (x ArchiveIndex) Keys() ([]string, error) {
	return ArchiveIndexKeys(x.conn, x.name)
}

func (x ArchiveIndex) KeyGet(key, attr string) (string, error) {
	return ArchiveIndexKeyGet(x.conn, x.name, key, attr)
}

func (x ArchiveIndex) KeyHas(key, attr string) (bool, error) {
	return ArchiveIndexKeyHas(x.conn, x.name, key, attr)
}

func (x ArchiveIndex) KeySet(key, attr, val string) (bool, error) {
	return ArchiveIndexKeySet(x.conn, x.name, key, attr, val)
}

func (x ArchiveIndex) Inventory(outputFile string, attributes ...string) (string, error) {
	return ArchiveIndexInventory(x.conn, x.name, outputFile, attributes...)
}

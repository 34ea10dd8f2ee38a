package awp5

// LicenseUnlimited is reported by LicenseFree for uncountable license
// resources, e.g. trial licenses.
const LicenseUnlimited = -1

// LicenseResources lists the internal names of the installed license
// components. These are a summary of license resources, not an exact
// inventory of product licenses.
func LicenseResources(c *Connection) ([]string, error) {
	return execNames(c, "License", "resources")
}

// LicenseFree returns the number of free licenses for the resource, or
// LicenseUnlimited when the resource is not countable.
func LicenseFree(c *Connection, resource string) (int64, error) {
	return execInt64(c, "License", resource, "free")
}

// LicenseResource addresses one license component by its internal name.
type LicenseResource struct {
	resource
}

func NewLicenseResource(c *Connection, name string) LicenseResource {
	return LicenseResource{resource{c, name}}
}

func (l LicenseResource) Free() (int64, error) {
	return LicenseFree(l.conn, l.name)
}

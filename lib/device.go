package awp5

// DeviceNames lists single tape drives, drives within a jukebox and
// virtual jukebox drives.
func DeviceNames(c *Connection) ([]string, error) {
	return execNames(c, "Device", "names")
}

// DeviceCleaning reports whether the device cleaning flag is set.
func DeviceCleaning(c *Connection, name string) (bool, error) {
	return execBool(c, "Device", name, "cleaning")
}

// DeviceSetCleaning sets the device cleaning flag.
func DeviceSetCleaning(c *Connection, name string, cleaning bool) error {
	flag := "0"
	if cleaning {
		flag = "1"
	}
	return execOK(c, "Device", name, "cleaning", flag)
}

// DeviceInventory performs a mount inventory for the device, updating
// the volume database, and returns the name of the loaded volume.
func DeviceInventory(c *Connection, name string) (string, error) {
	return execText(c, "Device", name, "inventory")
}

// Device addresses one tape device by name.
type Device struct {
	resource
}

func NewDevice(c *Connection, name string) Device {
	return Device{resource{c, name}}
}

func (d Device) Cleaning() (bool, error) {
	return DeviceCleaning(d.conn, d.name)
}

func (d Device) SetCleaning(cleaning bool) error {
	return DeviceSetCleaning(d.conn, d.name, cleaning)
}

func (d Device) Inventory() (string, error) {
	return DeviceInventory(d.conn, d.name)
}

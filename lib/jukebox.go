package awp5

import (
	"strconv"
)

// JukeboxNames lists all configured jukeboxes.
func JukeboxNames(c *Connection) ([]string, error) {
	return execNames(c, "Jukebox", "names")
}

// JukeboxInventory schedules an inventory of the jukebox and returns the
// job id. With barcode a bar code inventory is attempted, otherwise a
// mount inventory. startSlot/endSlot bound the inventoried slots; zero
// keeps the jukebox's configured bounds. An endSlot without a startSlot
// is ignored.
func JukeboxInventory(c *Connection, name string, barcode bool, startSlot, endSlot int) (string, error) {
	words := []string{"Jukebox", name, "inventory"}
	if barcode {
		words = append(words, "-barcode")
	}
	if startSlot > 0 {
		words = append(words, strconv.Itoa(startSlot))
		if endSlot > 0 {
			words = append(words, strconv.Itoa(endSlot))
		}
	}
	return execText(c, words...)
}

// JukeboxLabel schedules a label job for the new/empty volumes in the
// given slots, assigning them to pool, and returns the job id.
func JukeboxLabel(c *Connection, name, pool string, slots ...int) (string, error) {
	words := []string{"Jukebox", name, "label", pool}
	for _, slot := range slots {
		words = append(words, strconv.Itoa(slot))
	}
	return execText(c, words...)
}

// JukeboxSlotCount returns the number of media slots; slots are
// addressed as 1 through the count.
func JukeboxSlotCount(c *Connection, name string) (int, error) {
	return execInt(c, "Jukebox", name, "slotcount")
}

// JukeboxReset performs an unconditional hardware reset, forcefully
// emptying all drives, regardless of jobs using the jukebox.
func JukeboxReset(c *Connection, name string) error {
	return execOK(c, "Jukebox", name, "reset")
}

// JukeboxVolumes lists the volumes currently loaded in the jukebox,
// optionally restricted to the given slots.
func JukeboxVolumes(c *Connection, name string, slots ...int) ([]string, error) {
	words := []string{"Jukebox", name, "volumes"}
	for _, slot := range slots {
		words = append(words, strconv.Itoa(slot))
	}
	return execNames(c, words...)
}

// Jukebox addresses one media changer by name.
type Jukebox struct {
	resource
}

func NewJukebox(c *Connection, name string) Jukebox {
	return Jukebox{resource{c, name}}
}

func (j Jukebox) Inventory(barcode bool, startSlot, endSlot int) (string, error) {
	return JukeboxInventory(j.conn, j.name, barcode, startSlot, endSlot)
}

func (j Jukebox) Label(pool string, slots ...int) (string, error) {
	return JukeboxLabel(j.conn, j.name, pool, slots...)
}

func (j Jukebox) SlotCount() (int, error) {
	return JukeboxSlotCount(j.conn, j.name)
}

func (j Jukebox) Reset() error {
	return JukeboxReset(j.conn, j.name)
}

func (j Jukebox) Volumes(slots ...int) ([]string, error) {
	return JukeboxVolumes(j.conn, j.name, slots...)
}

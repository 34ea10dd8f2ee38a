package awp5

import (
	"io"
)

// Stamp of an exported report bundle. Should be in the YYYYMMDDTHHMMSS.MMM format.
type Stamp string

// Represents an exported report bundle
type Bundle struct {
	// Stamp at which this bundle was exported
	Stamp

	// What the bundle holds, e.g. "jobs"
	Scope string
}

// A destination is a storage for exported report bundles
type Destination interface {
	// List bundles present on the destination
	ListBundles() ([]Bundle, error)

	// Remove a bundle
	RemoveBundle(bundle Bundle) error

	// Store a bundle whose data is `data`
	SendBundle(bundle Bundle, data io.Reader) error

	// Retrieve the content of a previously stored bundle
	ReceiveBundle(bundle Bundle) (io.ReadCloser, error)
}

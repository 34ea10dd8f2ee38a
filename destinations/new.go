package destinations

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"
)

// New creates the destination described by the Type option. Exports go
// to a local directory ("fs"), an FTP server ("ftp"), a S3-compatible
// bucket ("object-storage") or an external helper program ("command").
func New(options *awp5.Options) (awp5.Destination, error) {
	switch options.String["Type"] {
	case "fs":
		return newFSDestination(options)
	case "ftp":
		return newFTPDestination(options)
	case "object-storage":
		return newObjectStorageDestination(options)
	case "command":
		return newCommandDestination(options)
	default:
		return nil, fmt.Errorf("invalid destination type %v", options.String["Type"])
	}
}

package destinations

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrFSPath = errors.New("fs destination: missing path")
	fsLog     = logrus.WithFields(logrus.Fields{
		"destination": "fs",
	})
)

type fsDestination struct {
	options  *awp5.Options
	basePath string
}

func newFSDestination(options *awp5.Options) (awp5.Destination, error) {
	basePath := options.String["Path"]
	if basePath == "" {
		return nil, ErrFSPath
	}

	err := os.MkdirAll(basePath, 0777)
	if err != nil {
		return nil, err
	}

	return &fsDestination{options: options, basePath: basePath}, nil
}

func (d *fsDestination) ListBundles() ([]awp5.Bundle, error) {
	var res []awp5.Bundle
	entries, err := os.ReadDir(d.basePath)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") || strings.HasPrefix(entry.Name(), "_") || entry.IsDir() {
			continue
		}

		bundle, err := awp5.ParseBundleFilename(entry.Name(), true)
		if err != nil {
			fsLog.WithFields(logrus.Fields{
				"file": entry.Name(),
			}).Warnf("invalid bundle file: %v", err)
			continue
		}

		res = append(res, bundle)
	}

	return res, nil
}

func (d *fsDestination) RemoveBundle(bundle awp5.Bundle) error {
	return os.Remove(path.Join(d.basePath, bundle.Filename()))
}

func (d *fsDestination) SendBundle(bundle awp5.Bundle, data io.Reader) error {
	tmpFilename := path.Join(d.basePath, "_tmp-"+bundle.Filename())
	finalFilename := path.Join(d.basePath, bundle.Filename())
	tmpF, err := os.Create(tmpFilename)
	if err != nil {
		return err
	}
	defer tmpF.Close()
	defer os.Remove(tmpFilename)

	fsLog.Printf("writing bundle to %s", tmpFilename)
	_, err = io.Copy(tmpF, data)
	if err != nil {
		return err
	}

	tmpF.Close()

	fsLog.Printf("moving final bundle to %s", finalFilename)
	return os.Rename(tmpFilename, finalFilename)
}

func (d *fsDestination) ReceiveBundle(bundle awp5.Bundle) (io.ReadCloser, error) {
	return os.Open(path.Join(d.basePath, bundle.Filename()))
}

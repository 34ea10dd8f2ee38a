package destinations

import (
	awp5 "github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/secsy/goftp"
	"github.com/sirupsen/logrus"
)

var (
	ftpLog = logrus.WithFields(logrus.Fields{
		"destination": "ftp",
	})
)

type ftpDestination struct {
	options *awp5.Options
	prefix  string
	client  *goftp.Client
}

func newFTPDestination(options *awp5.Options) (awp5.Destination, error) {
	u, err := url.Parse(options.String["URL"])
	if err != nil {
		ftpLog.Warnf("cannot parse URL: %v", err)
		return nil, fmt.Errorf("invalid FTP URL: %v", err)
	}

	address := u.Host
	username := u.User.Username()
	password, _ := u.User.Password()
	prefix := strings.Trim(options.String["Prefix"], "/") + "/"
	if prefix == "/" {
		prefix = ""
	}

	config := goftp.Config{
		User:     username,
		Password: password,
	}

	client, err := goftp.DialConfig(config, address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to FTP server: %v", err)
	}

	return &ftpDestination{options: options, client: client, prefix: prefix}, nil
}

func (d *ftpDestination) makePrefix() error {
	var err error

	if d.prefix == "" {
		return nil
	}

	dirs := strings.Split(strings.Trim(d.prefix, "/"), "/")
	currentPath := ""

	for _, dir := range dirs {
		currentPath = path.Join(currentPath, dir)
		_, err = d.client.Mkdir(currentPath)
	}

	return err
}

func (d *ftpDestination) ListBundles() ([]awp5.Bundle, error) {
	var res []awp5.Bundle

	_ = d.makePrefix()
	files, err := d.client.ReadDir(d.prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list bundles on FTP server: %v", err)
	}

	for _, file := range files {
		if file.IsDir() || strings.HasPrefix(file.Name(), ".") || strings.HasPrefix(file.Name(), "_") {
			continue
		}

		bundle, err := awp5.ParseBundleFilename(file.Name(), true)
		if err != nil {
			ftpLog.WithFields(logrus.Fields{
				"key": file.Name(),
			}).Warnf("invalid bundle file: %v", err)
			continue
		}

		res = append(res, bundle)
	}

	return res, nil
}

func (d *ftpDestination) RemoveBundle(bundle awp5.Bundle) error {
	filePath := path.Join(d.prefix, bundle.Filename())
	if err := d.client.Delete(filePath); err != nil {
		return fmt.Errorf("failed to remove bundle from FTP server: %v", err)
	}
	return nil
}

func (d *ftpDestination) SendBundle(bundle awp5.Bundle, data io.Reader) error {
	tmpFilePath := path.Join(d.prefix, "_tmp"+bundle.Filename())
	finalFilePath := path.Join(d.prefix, bundle.Filename())
	ftpLog.Printf("writing bundle to temporary file %s", tmpFilePath)

	_ = d.makePrefix()
	if err := d.client.Store(tmpFilePath, data); err != nil {
		return fmt.Errorf("failed to write temporary bundle file to FTP server: %v", err)
	}

	ftpLog.Printf("renaming temporary file %s to %s", tmpFilePath, finalFilePath)
	if err := d.client.Rename(tmpFilePath, finalFilePath); err != nil {
		_ = d.client.Delete(tmpFilePath)
		return fmt.Errorf("failed to rename temporary bundle file on FTP server: %v", err)
	}

	return nil
}

func (d *ftpDestination) ReceiveBundle(bundle awp5.Bundle) (io.ReadCloser, error) {
	filePath := path.Join(d.prefix, bundle.Filename())

	reader, writer := io.Pipe()
	go func() {
		defer writer.Close()
		if err := d.client.Retrieve(filePath, writer); err != nil {
			writer.CloseWithError(fmt.Errorf("failed to read bundle from FTP server: %v", err))
		}
	}()

	return reader, nil
}

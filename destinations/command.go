package destinations

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gobuffalo/flect"
	"github.com/sirupsen/logrus"
)

var (
	ErrCommandMissing = errors.New("command destination: missing command")
	commandLog        = logrus.WithFields(logrus.Fields{
		"destination": "command",
	})
)

type commandDestination struct {
	options *awp5.Options
	command []string
	env     []string
}

func newCommandDestination(options *awp5.Options) (awp5.Destination, error) {
	command := options.GetCommand("Command", nil)
	if len(command) == 0 {
		return nil, ErrCommandMissing
	}

	env := os.Environ()
	for k, v := range options.String {
		env = append(env, fmt.Sprintf("AWP5_OPT_%s=%s", flect.New(k).Underscore().ToUpper().String(), v))
	}
	for k, v := range options.StrSlice {
		jsonVal, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		env = append(env, fmt.Sprintf("AWP5_SOPT_%s=%s", flect.New(k).Underscore().ToUpper().String(), string(jsonVal)))
	}

	cmd := awp5.BuildCommand(command, "destination", "validate-options")
	cmd.Env = env
	if err := awp5.RunCommand(commandLog, cmd); err != nil {
		return nil, err
	}

	return &commandDestination{options: options, command: command, env: env}, nil
}

func (d *commandDestination) ListBundles() ([]awp5.Bundle, error) {
	var res []awp5.Bundle

	buf := bytes.NewBuffer(nil)
	cmd := awp5.BuildCommand(d.command, "destination", "list-bundles")
	cmd.Stdout = buf
	cmd.Env = d.env
	if err := awp5.RunCommand(commandLog, cmd); err != nil {
		return nil, err
	}

	for {
		entry, err := buf.ReadString('\n')
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.HasPrefix(entry, ".") || strings.HasPrefix(entry, "_") {
			continue
		}

		bundle, err := awp5.ParseBundleFilename(entry, false)
		if err != nil {
			commandLog.WithFields(logrus.Fields{
				"entry": entry,
			}).Warnf("invalid bundle file: %v", err)
			continue
		}

		res = append(res, bundle)
	}

	return res, nil
}

func (d *commandDestination) RemoveBundle(bundle awp5.Bundle) error {
	cmd := awp5.BuildCommand(d.command, "destination", "remove-bundle", bundle.Name())
	cmd.Env = d.env
	return awp5.RunCommand(commandLog, cmd)
}

func (d *commandDestination) SendBundle(bundle awp5.Bundle, data io.Reader) error {
	cmd := awp5.BuildCommand(d.command, "destination", "send-bundle", bundle.Name())
	cmd.Stdin = data
	cmd.Env = d.env
	return awp5.RunCommand(commandLog, cmd)
}

func (d *commandDestination) ReceiveBundle(bundle awp5.Bundle) (io.ReadCloser, error) {
	pr, pw := io.Pipe()
	cmd := awp5.BuildCommand(d.command, "destination", "receive-bundle", bundle.Name())
	cmd.Stdout = pw
	cmd.Env = d.env

	if err := awp5.StartCommand(commandLog, cmd); err != nil {
		return nil, err
	}

	go func() {
		pw.CloseWithError(cmd.Wait())
	}()

	return pr, nil
}

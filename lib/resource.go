package awp5

import (
	"time"
)

// resource is the common half of every object-surface type: the
// connection plus the identifier the CLI addresses commands to.
type resource struct {
	conn *Connection
	name string
}

// Name returns the identifier this resource addresses.
func (r resource) Name() string {
	return r.name
}

func execReply(c *Connection, words ...string) (Reply, error) {
	return c.Exec(NewCmd(words...))
}

func execText(c *Connection, words ...string) (string, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return "", err
	}
	return reply.Text(), nil
}

func execNames(c *Connection, words ...string) ([]string, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return nil, err
	}
	return reply.Names(), nil
}

func execBool(c *Connection, words ...string) (bool, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return false, err
	}
	return reply.Bool()
}

func execInt(c *Connection, words ...string) (int, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return 0, err
	}
	return reply.Int()
}

func execInt64(c *Connection, words ...string) (int64, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return 0, err
	}
	return reply.Int64()
}

func execTime(c *Connection, words ...string) (time.Time, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return time.Time{}, err
	}
	return reply.Time()
}

func execInt64s(c *Connection, words ...string) ([]int64, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return nil, err
	}
	return reply.Int64s()
}

func execTimes(c *Connection, words ...string) ([]time.Time, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return nil, err
	}
	return reply.Times()
}

// execOK is for commands whose reply only echoes state back.
func execOK(c *Connection, words ...string) error {
	_, err := c.Exec(NewCmd(words...))
	return err
}

// execDestroyed interprets the reply of the selection destroy commands,
// which is inverted relative to every other flag: 0 means destroyed.
func execDestroyed(c *Connection, words ...string) (bool, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return false, err
	}
	notDestroyed, err := reply.Bool()
	if err != nil {
		return false, err
	}
	return !notDestroyed, nil
}

// execConfigure interprets the reply of the Backup2Go configure
// commands, which report failures as negative numbers in place of the
// new resource name.
func execConfigure(c *Connection, words ...string) (string, error) {
	reply, err := c.Exec(NewCmd(words...))
	if err != nil {
		return "", err
	}
	switch text := reply.Text(); text {
	case "-1":
		return "", ErrPeerUnreachable
	case "-2":
		return "", ErrPeerCredentials
	case "-3":
		return "", ErrPeerTemplate
	default:
		return text, nil
	}
}

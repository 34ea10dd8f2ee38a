package awp5

import (
	"strconv"
)

// Result codes of ClientPing.
const (
	ClientPingWrongVersion     = -4
	ClientPingDisabled         = -3
	ClientPingWrongCredentials = -2
	ClientPingNetworkProblem   = -1
	ClientPingOK               = 1
)

// ClientNames lists all registered P5 clients. Client records are
// read-only at the CLI level; they are maintained in the P5 web GUI.
func ClientNames(c *Connection) ([]string, error) {
	return execNames(c, "Client", "names")
}

// ClientDescribe returns the human-readable client description.
func ClientDescribe(c *Connection, name string) (string, error) {
	return execText(c, "Client", name, "describe")
}

// ClientHostname returns the host name or IP address of the client.
func ClientHostname(c *Connection, name string) (string, error) {
	return execText(c, "Client", name, "hostname")
}

// ClientIsThin reports whether the client is of type Workstation rather
// than Server.
func ClientIsThin(c *Connection, name string) (bool, error) {
	return execBool(c, "Client", name, "isthin")
}

// ClientPort returns the TCP port of the client.
func ClientPort(c *Connection, name string) (int, error) {
	return execInt(c, "Client", name, "port")
}

// ClientPing tests the connection to the client and returns one of the
// ClientPing constants. timeoutSeconds bounds the wait; zero keeps the
// server default of 600 seconds.
func ClientPing(c *Connection, name string, timeoutSeconds int) (int, error) {
	timeout := ""
	if timeoutSeconds > 0 {
		timeout = strconv.Itoa(timeoutSeconds)
	}
	return execInt(c, "Client", name, "ping", timeout)
}

// Client addresses one registered P5 client by name.
type Client struct {
	resource
}

func NewClient(c *Connection, name string) Client {
	return Client{resource{c, name}}
}

func (cl Client) Describe() (string, error) {
	return ClientDescribe(cl.conn, cl.name)
}

func (cl Client) Hostname() (string, error) {
	return ClientHostname(cl.conn, cl.name)
}

func (cl Client) IsThin() (bool, error) {
	return ClientIsThin(cl.conn, cl.name)
}

func (cl Client) Port() (int, error) {
	return ClientPort(cl.conn, cl.name)
}

func (cl Client) Ping(timeoutSeconds int) (int, error) {
	return ClientPing(cl.conn, cl.name, timeoutSeconds)
}

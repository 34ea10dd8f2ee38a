package awp5

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/gobuffalo/flect"
	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Defaults of a stock P5 installation.
const (
	DefaultServer   = "127.0.0.1"
	DefaultPort     = 8000
	DefaultUsername = "Administrator"
	DefaultPassword = "password"
	DefaultTimeout  = 60 * time.Second

	// The CLI socket listens on the server port shifted by this offset:
	// a server on 8000 (config/lexxsrv.8000) serves nsdchat on 9001.
	cliPortOffset = 1001
)

// DefaultPath returns the standard P5 installation directory.
func DefaultPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\ARCHIWARE\Data_Lifecycle_Management_Suite`
	}
	return "/usr/local/aw"
}

// Config carries everything needed to reach one P5 server through its
// nsdchat CLI.
type Config struct {
	Server   string `yaml:"server"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Path is the P5 installation directory; the nsdchat binary is
	// expected under its bin/ subdirectory.
	Path string `yaml:"path,omitempty"`

	// Nsdchat overrides the Path-derived invocation, in shell syntax,
	// e.g. "ssh p5host /usr/local/aw/bin/nsdchat". Useful when the CLI
	// port is not reachable directly.
	Nsdchat string `yaml:"nsdchat,omitempty"`

	// SessionID names the server-side CLI session; commands sharing an id
	// share session state such as the geterror buffer. Generated when
	// empty.
	SessionID string `yaml:"session_id,omitempty"`

	// Timeout bounds a single CLI call. Zero means DefaultTimeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

func (c *Config) applyDefaults() {
	if c.Server == "" {
		c.Server = DefaultServer
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Username == "" {
		c.Username = DefaultUsername
	}
	if c.Password == "" {
		c.Password = DefaultPassword
	}
	if c.Path == "" {
		c.Path = DefaultPath()
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.SessionID == "" {
		c.SessionID = newSessionID()
	}
}

// Validate rejects configurations that cannot produce a usable connection
// string.
func (c *Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("%w: server must not be empty", ErrInvalidArg)
	}
	if c.Port < 0 || c.Port > 65535-cliPortOffset {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidArg, c.Port)
	}
	if c.Username == "" {
		return fmt.Errorf("%w: username must not be empty", ErrInvalidArg)
	}
	return nil
}

// nsdchatCommand returns the argument vector used to start nsdchat.
func (c *Config) nsdchatCommand() []string {
	if c.Nsdchat != "" {
		command, err := shlex.Split(c.Nsdchat)
		if err != nil {
			logrus.Warnf("cannot parse nsdchat command %q: %v", c.Nsdchat, err)
			return []string{c.Nsdchat}
		}
		return command
	}

	bin := "nsdchat"
	if runtime.GOOS == "windows" {
		bin = "nsdchat.exe"
	}
	return []string{filepath.Join(c.Path, "bin", bin)}
}

// connectionString renders the awsock URL nsdchat dials, with the CLI
// port derived from the configured server port.
func (c *Config) connectionString() string {
	return fmt.Sprintf("awsock:/%s:%s:%s@%s:%d",
		c.Username, c.Password, c.SessionID, c.Server, c.Port+cliPortOffset)
}

// ApplyEnv overrides fields from AWP5_* environment variables. The
// variable names derive from the field names (Server → AWP5_SERVER,
// SessionID → AWP5_SESSION_ID, and so on).
func (c *Config) ApplyEnv() {
	for field, set := range map[string]func(string){
		"Server":    func(v string) { c.Server = v },
		"Username":  func(v string) { c.Username = v },
		"Password":  func(v string) { c.Password = v },
		"Path":      func(v string) { c.Path = v },
		"Nsdchat":   func(v string) { c.Nsdchat = v },
		"SessionID": func(v string) { c.SessionID = v },
		"Port": func(v string) {
			p, err := strconv.Atoi(v)
			if err != nil {
				logrus.Warnf("invalid %s: %v", envKey("Port"), err)
				return
			}
			c.Port = p
		},
		"Timeout": func(v string) {
			d, err := time.ParseDuration(v)
			if err != nil {
				logrus.Warnf("invalid %s: %v", envKey("Timeout"), err)
				return
			}
			c.Timeout = d
		},
	} {
		if v, ok := os.LookupEnv(envKey(field)); ok {
			set(v)
		}
	}
}

func envKey(field string) string {
	return "AWP5_" + flect.New(field).Underscore().ToUpper().String()
}

// ProfilesFile is the on-disk configuration of the awp5 CLI: named
// connection profiles plus the one to use when none is requested.
type ProfilesFile struct {
	DefaultProfile string            `yaml:"default_profile,omitempty"`
	Profiles       map[string]Config `yaml:"profiles"`
}

// ConfigPath returns the profiles file location: $AWP5_CONFIG when set,
// otherwise ~/.config/awp5/config.yaml.
func ConfigPath() string {
	if p := os.Getenv("AWP5_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "awp5.yaml")
	}
	return filepath.Join(home, ".config", "awp5", "config.yaml")
}

// LoadProfiles reads the profiles file. A missing file is not an error:
// it yields an empty, usable ProfilesFile.
func LoadProfiles(path string) (*ProfilesFile, error) {
	f := &ProfilesFile{Profiles: make(map[string]Config)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	} else if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if f.Profiles == nil {
		f.Profiles = make(map[string]Config)
	}
	return f, nil
}

// Save writes the profiles file with owner-only permissions: it contains
// the P5 password.
func (f *ProfilesFile) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Profile resolves a named profile, or the default one when name is
// empty. An empty file with no profiles resolves the empty name to a
// zero Config so that environment variables and flags alone can drive a
// connection.
func (f *ProfilesFile) Profile(name string) (Config, error) {
	if name == "" {
		name = f.DefaultProfile
	}
	if name == "" {
		if len(f.Profiles) == 0 {
			return Config{}, nil
		}
		if cfg, ok := f.Profiles["default"]; ok {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: no default profile configured", ErrInvalidArg)
	}

	cfg, ok := f.Profiles[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: profile %q", ErrNotFound, name)
	}
	return cfg, nil
}

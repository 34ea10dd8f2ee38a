package awp5

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"filippo.io/age"
	"github.com/sirupsen/logrus"
)

var (
	bundleFilenameRe = regexp.MustCompile(fmt.Sprintf(`^(%s)-([a-z][a-z0-9]*)(\.awr)?$`, StampRe))
	StampRe          = `\d{8}T\d{6}\.\d{3}`  // Regexp matching a bundle stamp
	StampTimeFormat  = "20060102T150405.000" // Time format of a stamp, for time.Parse / time.Format
)

// Time encoded in the stamp
func (s Stamp) Time() (time.Time, error) {
	return time.ParseInLocation(StampTimeFormat, string(s), time.UTC)
}

func (s Stamp) Name() string {
	return string(s)
}

// NewBundle stamps a bundle for the given scope at time t
func NewBundle(scope string, t time.Time) Bundle {
	return Bundle{Stamp: Stamp(t.UTC().Format(StampTimeFormat)), Scope: scope}
}

// Name of a bundle: Stamp.Name() + "-" + Scope
func (b Bundle) Name() string {
	return fmt.Sprintf("%s-%s", b.Stamp.Name(), b.Scope)
}

// Shorthand for Name() + ".awr"
func (b Bundle) Filename() string {
	return b.Name() + ".awr"
}

// Compare bundles by the date of their stamp
func CompareBundles(a, b Bundle) int {
	return strings.Compare(string(a.Stamp), string(b.Stamp))
}

// Sorted from most recent to least recent
func SortedListBundles(dst Destination) ([]Bundle, error) {
	bundles, err := dst.ListBundles()
	if err != nil {
		return nil, err
	}

	sort.Slice(bundles, func(a, b int) bool {
		return CompareBundles(bundles[a], bundles[b]) >= 0
	})

	return bundles, nil
}

// Reverse of Bundle.Filename()
func ParseBundleFilename(f string, requireExt bool) (Bundle, error) {
	f = path.Base(f)
	m := bundleFilenameRe.FindStringSubmatch(f)
	if m == nil {
		return Bundle{}, fmt.Errorf("cannot parse bundle filename: %s", f)
	}

	if requireExt && m[3] != ".awr" {
		return Bundle{}, fmt.Errorf("cannot parse bundle filename: %s: missing or invalid extension '%s'", f, m[3])
	}

	return Bundle{Stamp: Stamp(m[1]), Scope: m[2]}, nil
}

// Load a private key either from a file (if keyFile argument is provided), or from its content (key argument)
func LoadIdentities(keyFile, key string) ([]age.Identity, error) {
	if keyFile != "" && key != "" {
		return nil, fmt.Errorf("must provide one of key file or key, not both")
	}

	if keyFile != "" {
		keyData, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, err
		}

		key = string(keyData)
	}

	return age.ParseIdentities(bytes.NewBufferString(key))
}

// Load a public key either from a file (if keyFile argument is provided), or from its content (key argument)
// If the file or the content represents a private key, derive the public key from it
func LoadRecipients(keyFile, key string) ([]age.Recipient, error) {
	if keyFile != "" && key != "" {
		return nil, fmt.Errorf("must provide one of key file or key, not both")
	}

	if keyFile != "" {
		keyData, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, err
		}

		key = string(keyData)
	}

	if strings.Contains(key, "AGE-SECRET-KEY-") {
		identities, err := age.ParseIdentities(bytes.NewBufferString(key))
		if err != nil {
			return nil, err
		}

		recipients := make([]age.Recipient, 0, len(identities))
		for _, id := range identities {
			xid, ok := id.(*age.X25519Identity)
			if !ok {
				return nil, fmt.Errorf("cannot derive a public key from this identity")
			}
			recipients = append(recipients, xid.Recipient())
		}
		return recipients, nil
	}

	return age.ParseRecipients(bytes.NewBufferString(key))
}

func BuildCommand(command []string, additionalArgs ...string) *exec.Cmd {
	fullArgs := append(append([]string{}, command...), additionalArgs...)
	cmd := exec.Command(fullArgs[0], fullArgs[1:]...)
	cmd.Stdout = os.Stderr // default stdout to stderr because we don't want other processes to output stuff on our output
	cmd.Stderr = os.Stderr
	return cmd
}

func StartCommand(log *logrus.Entry, cmd *exec.Cmd) error {
	log.Printf("starting: %s", cmd.String())
	return cmd.Start()
}

func RunCommand(log *logrus.Entry, cmd *exec.Cmd) error {
	log.Printf("starting: %s", cmd.String())
	return cmd.Run()
}

package awp5

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel strings the CLI uses in place of missing values.
const (
	EmptyValue   = "<empty>"
	UnknownValue = "unknown"
)

// Reply holds the raw text a single CLI command produced. Accessors
// interpret it; the zero Reply behaves like an empty one.
type Reply struct {
	raw string
}

// Text returns the trimmed reply. Multi-line replies (reports, protocols,
// tickets) keep their inner newlines.
func (r Reply) Text() string {
	return r.raw
}

// Words splits the reply on whitespace.
func (r Reply) Words() []string {
	return strings.Fields(r.raw)
}

// Names returns Words with the <empty> and unknown sentinels filtered out,
// the shape of every listing reply. A no-results listing yields an empty
// slice, not an error.
func (r Reply) Names() []string {
	words := r.Words()
	names := make([]string, 0, len(words))
	for _, w := range words {
		if w == EmptyValue || w == UnknownValue {
			continue
		}
		names = append(names, w)
	}
	return names
}

// Paths splits the reply on whitespace keeping {}-braced entries whole,
// the shape of path listings, and filters the sentinels like Names.
func (r Reply) Paths() []string {
	words := splitBraced(r.raw)
	paths := make([]string, 0, len(words))
	for _, w := range words {
		if w == EmptyValue || w == UnknownValue {
			continue
		}
		paths = append(paths, w)
	}
	return paths
}

// Empty reports whether the reply is blank or the <empty> sentinel.
func (r Reply) Empty() bool {
	return r.raw == "" || r.raw == EmptyValue
}

// Bool interprets the "1"/"0" replies of flag queries.
func (r Reply) Bool() (bool, error) {
	switch r.raw {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("expected boolean reply, got %q", r.raw)
}

func (r Reply) Int() (int, error) {
	n, err := strconv.Atoi(r.raw)
	if err != nil {
		return 0, fmt.Errorf("expected numeric reply, got %q", r.raw)
	}
	return n, nil
}

// Int64 parses counters and kbyte sizes.
func (r Reply) Int64() (int64, error) {
	n, err := strconv.ParseInt(r.raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected numeric reply, got %q", r.raw)
	}
	return n, nil
}

// Time interprets the reply as seconds since the Unix epoch, the format
// of every date the server reports. A 0 reply means no date is set and
// yields the zero time.
func (r Reply) Time() (time.Time, error) {
	n, err := r.Int64()
	if err != nil {
		return time.Time{}, err
	}
	if n == 0 {
		return time.Time{}, nil
	}
	return time.Unix(n, 0), nil
}

// Int64s parses each word of the reply as an int64, the shape of
// per-instance size listings. Sentinel words are skipped, so a
// no-instances reply yields an empty slice.
func (r Reply) Int64s() ([]int64, error) {
	words := r.Names()
	ns := make([]int64, 0, len(words))
	for _, w := range words {
		n, err := strconv.ParseInt(w, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected numeric reply, got %q", w)
		}
		ns = append(ns, n)
	}
	return ns, nil
}

// Times interprets each word of the reply as seconds since the Unix
// epoch, the shape of per-instance date listings.
func (r Reply) Times() ([]time.Time, error) {
	ns, err := r.Int64s()
	if err != nil {
		return nil, err
	}
	ts := make([]time.Time, len(ns))
	for i, n := range ns {
		ts[i] = time.Unix(n, 0)
	}
	return ts, nil
}

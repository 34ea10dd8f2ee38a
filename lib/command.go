package awp5

import "strings"

// Cmd is one CLI command in the tool's identifier-first word grammar,
// e.g. ("Volume", "LTO01", "isonline"). The words are handed to nsdchat
// as separate arguments; the server joins them back into one command line.
type Cmd struct {
	words []string
}

// NewCmd builds a command. Empty words are dropped, so optional CLI
// arguments can be passed unconditionally and are omitted when unset.
// Words containing whitespace are wrapped in the {} braces the CLI
// expects; words the caller braced (or escaped) already pass through.
func NewCmd(words ...string) Cmd {
	return Cmd{}.With(words...)
}

// RawCmd builds a command verbatim, without filtering or quoting. Meant
// for passing through user-typed command words unchanged.
func RawCmd(words ...string) Cmd {
	return Cmd{words: append([]string(nil), words...)}
}

// With returns a copy of the command with the given words appended,
// applying the same dropping and quoting rules as NewCmd.
func (c Cmd) With(words ...string) Cmd {
	out := make([]string, len(c.words), len(c.words)+len(words))
	copy(out, c.words)
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, braceQuote(w))
	}
	return Cmd{words: out}
}

// Words returns the command as an argument vector.
func (c Cmd) Words() []string {
	return append([]string(nil), c.words...)
}

func (c Cmd) String() string {
	return strings.Join(c.words, " ")
}

func braceQuote(w string) string {
	if !strings.ContainsAny(w, " \t\r\n") {
		return w
	}
	if strings.HasPrefix(w, "{") && strings.HasSuffix(w, "}") {
		return w
	}
	return "{" + w + "}"
}

// splitBraced splits a space-delimited string whose entries may be
// wrapped in {} braces, the CLI's convention for values containing
// blanks. Braces do not nest.
func splitBraced(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			i++
		case '{':
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				out = append(out, s[i+1:])
				return out
			}
			out = append(out, s[i+1:i+1+end])
			i += end + 2
		default:
			end := strings.IndexAny(s[i:], " \t\r\n")
			if end < 0 {
				out = append(out, s[i:])
				return out
			}
			out = append(out, s[i:i+end])
			i += end
		}
	}
	return out
}

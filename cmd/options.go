package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/destinations"
	"github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"text/template"
	"time"

	"filippo.io/age"
	"github.com/Masterminds/sprig/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type optionsBuilder struct {
	Options           *awp5.Options
	Destination       awp5.Destination
	RetentionPolicies []awp5.RetentionPolicy
	Recipients        []age.Recipient
	Identities        []age.Identity
	Error             error
}

func newOptionsBuilder(options *awp5.Options, err error) *optionsBuilder {
	return &optionsBuilder{Options: options, Error: err}
}

func (o *optionsBuilder) WithDestination() *optionsBuilder {
	if o.Error == nil {
		o.Destination, o.Error = destinations.New(o.Options)
	}
	return o
}

func (o *optionsBuilder) WithRetentionPolicies() *optionsBuilder {
	if o.Error == nil {
		o.RetentionPolicies, o.Error = o.Options.GetRetentionPolicies()
	}
	return o
}

// Missing Key and KeyFile options mean plaintext bundles.
func (o *optionsBuilder) WithRecipients() *optionsBuilder {
	if o.Error == nil && (o.Options.String["KeyFile"] != "" || o.Options.String["Key"] != "") {
		o.Recipients, o.Error = awp5.LoadRecipients(o.Options.String["KeyFile"], o.Options.String["Key"])
	}
	return o
}

func (o *optionsBuilder) WithIdentities() *optionsBuilder {
	if o.Error == nil && (o.Options.String["KeyFile"] != "" || o.Options.String["Key"] != "") {
		o.Identities, o.Error = awp5.LoadIdentities(o.Options.String["KeyFile"], o.Options.String["Key"])
	}
	return o
}

func (o *optionsBuilder) FatalOnError() *optionsBuilder {
	if o.Error != nil {
		logrus.Fatal(o.Error)
	}
	return o
}

func destinationOptions(optionLine string) *optionsBuilder {
	return newOptionsBuilder(awp5.EvalOptions(awp5.SplitOptions(optionLine), presets))
}

// openConnection builds the connection configuration from the profiles
// file, the AWP5_* environment and the command line flags, in that
// order of precedence, then logs in.
func openConnection() *awp5.Connection {
	profiles, err := awp5.LoadProfiles(profilesPath())
	if err != nil {
		logrus.Fatal(err)
	}

	cfg, err := profiles.Profile(profileName)
	if err != nil {
		logrus.Fatal(err)
	}

	cfg.ApplyEnv()
	applyConnectionFlags(&cfg)

	conn, err := awp5.Open(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	return conn
}

func profilesPath() string {
	if configFile != "" {
		return configFile
	}
	return awp5.ConfigPath()
}

func applyConnectionFlags(cfg *awp5.Config) {
	if flagServer != "" {
		cfg.Server = flagServer
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagUsername != "" {
		cfg.Username = flagUsername
	}
	if flagPassword != "" {
		cfg.Password = flagPassword
	}
	if flagPath != "" {
		cfg.Path = flagPath
	}
	if flagNsdchat != "" {
		cfg.Nsdchat = flagNsdchat
	}
	if flagTimeout != 0 {
		cfg.Timeout = flagTimeout
	}
}

func printNames(names []string, err error) {
	if err != nil {
		logrus.Fatal(err)
	}
	for _, n := range names {
		fmt.Println(n)
	}
}

func printText(text string, err error) {
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println(text)
}

func printBool(v bool, err error) {
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println(v)
}

func printInt(v int, err error) {
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println(v)
}

func fatalOnError(err error) {
	if err != nil {
		logrus.Fatal(err)
	}
}

// A named, lazily fetched attribute of a show command. Names follow the
// nsdchat verbs so that templates read like the CLI itself.
type field struct {
	name string
	get  func() (string, error)
}

func boolField(name string, get func() (bool, error)) field {
	return field{name, func() (string, error) {
		v, err := get()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	}}
}

func intField(name string, get func() (int, error)) field {
	return field{name, func() (string, error) {
		v, err := get()
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	}}
}

func int64Field(name string, get func() (int64, error)) field {
	return field{name, func() (string, error) {
		v, err := get()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	}}
}

func timeField(name string, get func() (time.Time, error)) field {
	return field{name, func() (string, error) {
		v, err := get()
		if err != nil {
			return "", err
		}
		if v.IsZero() {
			return "", nil
		}
		return v.Format(time.RFC3339), nil
	}}
}

// printFields fetches every field and renders them as a table, or
// through the given template with the fields as a map. Fields the
// server rejects are skipped: not every attribute applies to every
// resource instance.
func printFields(tmplText string, fields []field) {
	var lastErr error
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		v, err := f.get()
		if err != nil {
			logrus.Debugf("cannot read %s: %v", f.name, err)
			lastErr = err
			continue
		}
		values[f.name] = v
	}
	if len(values) == 0 && lastErr != nil {
		logrus.Fatal(lastErr)
	}

	if tmplText != "" {
		renderTemplate(tmplText, values)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, f := range fields {
		if v, ok := values[f.name]; ok {
			fmt.Fprintf(w, "%s\t%s\n", f.name, v)
		}
	}
	fatalOnError(w.Flush())
}

func renderTemplate(text string, data interface{}) {
	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := tmpl.Execute(os.Stdout, data); err != nil {
		logrus.Fatal(err)
	}
	fmt.Println()
}

func addTemplateFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "template", "", "", "format the output with this text/template (sprig functions available)")
}

package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdConfig = &cobra.Command{
	Use:   "config",
	Short: "Manage connection profiles",
}

var cmdConfigInit = &cobra.Command{
	Use:   "init [profile-name]",
	Short: "Create or update a profile from the connection flags",
	Long: strings.TrimSpace(`
Store the connection settings given by the --server, --port,
--username, --password, --path, --nsdchat and --timeout flags as a
named profile (default: "default"). The first stored profile becomes
the default profile. The file is written with owner-only permissions
since it contains the P5 password.
	`),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := "default"
		if len(args) > 0 {
			name = args[0]
		}

		profiles, err := awp5.LoadProfiles(profilesPath())
		if err != nil {
			logrus.Fatal(err)
		}

		cfg := profiles.Profiles[name]
		applyConnectionFlags(&cfg)
		profiles.Profiles[name] = cfg
		if profiles.DefaultProfile == "" {
			profiles.DefaultProfile = name
		}

		if err := profiles.Save(profilesPath()); err != nil {
			logrus.Fatal(err)
		}
		fmt.Printf("wrote profile %q to %s\n", name, profilesPath())
	},
}

var cmdConfigShow = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved connection settings, with the password masked",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
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

		password := ""
		if cfg.Password != "" {
			password = "********"
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintf(w, "server\t%s\n", cfg.Server)
		fmt.Fprintf(w, "port\t%d\n", cfg.Port)
		fmt.Fprintf(w, "username\t%s\n", cfg.Username)
		fmt.Fprintf(w, "password\t%s\n", password)
		fmt.Fprintf(w, "path\t%s\n", cfg.Path)
		fmt.Fprintf(w, "nsdchat\t%s\n", cfg.Nsdchat)
		fmt.Fprintf(w, "timeout\t%s\n", cfg.Timeout)
		fatalOnError(w.Flush())
	},
}

var cmdConfigSetProfile = &cobra.Command{
	Use:   "set-profile <profile-name>",
	Short: "Select the default profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profiles, err := awp5.LoadProfiles(profilesPath())
		if err != nil {
			logrus.Fatal(err)
		}

		if _, ok := profiles.Profiles[args[0]]; !ok {
			logrus.Fatalf("no such profile: %s", args[0])
		}

		profiles.DefaultProfile = args[0]
		if err := profiles.Save(profilesPath()); err != nil {
			logrus.Fatal(err)
		}
	},
}

var cmdConfigList = &cobra.Command{
	Use:   "list",
	Short: "List profile names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		profiles, err := awp5.LoadProfiles(profilesPath())
		if err != nil {
			logrus.Fatal(err)
		}

		for name := range profiles.Profiles {
			if name == profiles.DefaultProfile {
				fmt.Printf("%s (default)\n", name)
			} else {
				fmt.Println(name)
			}
		}
	},
}

func init() {
	cmdConfig.AddCommand(cmdConfigInit, cmdConfigShow, cmdConfigSetProfile, cmdConfigList)
}

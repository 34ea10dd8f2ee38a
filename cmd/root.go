package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"
	"os"
	"os/user"
	"path"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel    string
	configFile  string
	profileName string

	flagServer   string
	flagPort     int
	flagUsername string
	flagPassword string
	flagPath     string
	flagNsdchat  string
	flagTimeout  time.Duration

	presetsDir string
	presets    map[string][]awp5.KeyValuePair

	tag       = "git"
	commit    = "unknown"
	buildDate = "unknown"

	rootCmd = &cobra.Command{
		Use:   "awp5",
		Short: "Drive an Archiware P5 server through its nsdchat CLI",
	}
	cmdVersion = &cobra.Command{
		Use: "version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version: %s\n", tag)
			fmt.Printf("Commit: %s\n", commit)
			fmt.Printf("Build Date: %s\n", buildDate)
		},
	}
)

func init() {
	cobra.OnInitialize(func() {
		if logLevel != "" {
			level, err := logrus.ParseLevel(logLevel)
			if err == nil {
				logrus.SetLevel(level)
			} else {
				logrus.Warnf("Cannot set log level: %v", err)
			}
		}

		if presetsDir == "" {
			usr, err := user.Current()
			if err != nil {
				logrus.Fatal(err)
			}

			if usr.Uid == "0" {
				presetsDir = path.Join("/etc", "awp5", "presets")
			} else {
				presetsDir = path.Join(usr.HomeDir, ".config", "awp5", "presets")
			}
		}

		var err error
		presets, err = awp5.ReadPresets(presetsDir)
		if err != nil {
			logrus.Fatal(err)
		}
	})

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", os.Getenv("LOG_LEVEL"), "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to the profiles file")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "P", "", "connection profile to use")
	rootCmd.PersistentFlags().StringVarP(&flagServer, "server", "s", "", "P5 server host, overrides the profile")
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", 0, "P5 server port, overrides the profile")
	rootCmd.PersistentFlags().StringVarP(&flagUsername, "username", "u", "", "P5 user name, overrides the profile")
	rootCmd.PersistentFlags().StringVarP(&flagPassword, "password", "", "", "P5 password, overrides the profile")
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "", "", "P5 installation directory, overrides the profile")
	rootCmd.PersistentFlags().StringVarP(&flagNsdchat, "nsdchat", "", "", "nsdchat invocation in shell syntax, overrides the profile")
	rootCmd.PersistentFlags().DurationVarP(&flagTimeout, "timeout", "t", 0, "timeout of a single CLI call, overrides the profile")
	rootCmd.PersistentFlags().StringVarP(&presetsDir, "presets-dir", "", "", "path to the destination presets directory")

	rootCmd.AddCommand(cmdJob, cmdVolume, cmdClient, cmdDevice, cmdJukebox, cmdPool, cmdPlan, cmdSrvInfo, cmdLicense, cmdRaw, cmdConfig, cmdKey, cmdExport, cmdPreset, cmdVersion)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logrus.Fatal(err)
	}
}

package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"

	"github.com/spf13/cobra"
)

// The three plan families share most of their verbs; each one supplies
// its lib functions and gets the same command tree.
type planFamily struct {
	noun       string
	names      func(c *awp5.Connection) ([]string, error)
	fields     func(c *awp5.Connection, name string) []field
	submit     func(c *awp5.Connection, name string, now bool) (string, error)
	cancel     func(c *awp5.Connection, name string) (bool, error)
	stop       func(c *awp5.Connection, name string) (bool, error)
	enable     func(c *awp5.Connection, name string) error
	disable    func(c *awp5.Connection, name string) error
	run        func(c *awp5.Connection, name string, delete bool) (string, error)
	deleteHelp string
}

func planCommands(f planFamily) *cobra.Command {
	family := &cobra.Command{
		Use:   f.noun,
		Short: fmt.Sprintf("Manage %s plans", f.noun),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List plan ids",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c := openConnection()
			defer c.Close()
			printNames(f.names(c))
		},
	}

	var showTemplate string
	show := &cobra.Command{
		Use:   "show <plan>",
		Short: "Show the configuration of a plan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := openConnection()
			defer c.Close()
			printFields(showTemplate, f.fields(c, args[0]))
		},
	}
	addTemplateFlag(show, &showTemplate)

	var submitNow bool
	submit := &cobra.Command{
		Use:   "submit <plan>",
		Short: "Schedule a plan execution and print the job id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := openConnection()
			defer c.Close()
			printText(f.submit(c, args[0], submitNow))
		},
	}
	submit.Flags().BoolVarP(&submitNow, "now", "n", false, "run immediately instead of at the next planned time")

	cancel := &cobra.Command{
		Use:   "cancel <plan>",
		Short: "Cancel the scheduled execution of a plan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := openConnection()
			defer c.Close()
			printBool(f.cancel(c, args[0]))
		},
	}

	stop := &cobra.Command{
		Use:   "stop <plan>",
		Short: "Stop the running execution of a plan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := openConnection()
			defer c.Close()
			printBool(f.stop(c, args[0]))
		},
	}

	enable := &cobra.Command{
		Use:   "enable <plan>",
		Short: "Enable a plan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := openConnection()
			defer c.Close()
			fatalOnError(f.enable(c, args[0]))
		},
	}

	disable := &cobra.Command{
		Use:   "disable <plan>",
		Short: "Disable a plan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := openConnection()
			defer c.Close()
			fatalOnError(f.disable(c, args[0]))
		},
	}

	family.AddCommand(list, show, submit, cancel, stop, enable, disable)

	if f.run != nil {
		var runDelete bool
		run := &cobra.Command{
			Use:   "run <plan>",
			Short: "Run a plan right now and print the job id",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				c := openConnection()
				defer c.Close()
				printText(f.run(c, args[0], runDelete))
			},
		}
		run.Flags().BoolVarP(&runDelete, "delete", "", false, f.deleteHelp)
		family.AddCommand(run)
	}

	return family
}

var cmdPlan = &cobra.Command{
	Use:   "plan",
	Short: "Manage archive, backup and synchronize plans",
}

var cmdPlanArchiveVerify = &cobra.Command{
	Use:   "verify <plan> <client> <job>",
	Short: "Re-run the post-archive tasks for the files of a past job and print the verify job id",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printText(awp5.ArchivePlanVerify(c, args[0], args[1], args[2]))
	},
}

func init() {
	archive := planCommands(planFamily{
		noun:  "archive",
		names: awp5.ArchivePlanNames,
		fields: func(c *awp5.Connection, name string) []field {
			p := awp5.NewArchivePlan(c, name)
			return []field{
				{"describe", p.Describe},
				boolField("enabled", p.Enabled),
				boolField("autostart", p.AutoStart),
				boolField("incrlevel", p.IncrLevel),
				{"database", p.Database},
				{"pool", p.Pool},
				boolField("deletefiles", p.DeleteFiles),
				boolField("deleteall", p.DeleteAll),
			}
		},
		submit:     awp5.ArchivePlanSubmit,
		cancel:     awp5.ArchivePlanCancel,
		stop:       awp5.ArchivePlanStop,
		enable:     awp5.ArchivePlanEnable,
		disable:    awp5.ArchivePlanDisable,
		run:        awp5.ArchivePlanRun,
		deleteHelp: "remove the archived files after completion",
	})
	archive.AddCommand(cmdPlanArchiveVerify)

	backup := planCommands(planFamily{
		noun:  "backup",
		names: awp5.BackupPlanNames,
		fields: func(c *awp5.Connection, name string) []field {
			p := awp5.NewBackupPlan(c, name)
			return []field{
				{"describe", p.Describe},
				boolField("enabled", p.Enabled),
			}
		},
		submit:  awp5.BackupPlanSubmit,
		cancel:  awp5.BackupPlanCancel,
		stop:    awp5.BackupPlanStop,
		enable:  awp5.BackupPlanEnable,
		disable: awp5.BackupPlanDisable,
	})

	sync := planCommands(planFamily{
		noun:  "sync",
		names: awp5.SyncPlanNames,
		fields: func(c *awp5.Connection, name string) []field {
			p := awp5.NewSyncPlan(c, name)
			return []field{
				{"describe", p.Describe},
				boolField("enabled", p.Enabled),
				{"sourcehost", p.SourceHost},
				{"sourcepath", p.SourcePath},
				{"targethost", p.TargetHost},
				{"targetpath", p.TargetPath},
			}
		},
		submit:     awp5.SyncPlanSubmit,
		cancel:     awp5.SyncPlanCancel,
		stop:       awp5.SyncPlanStop,
		enable:     awp5.SyncPlanEnable,
		disable:    awp5.SyncPlanDisable,
		run:        awp5.SyncPlanRun,
		deleteHelp: "delete target files that no longer exist at the source",
	})

	cmdPlan.AddCommand(archive, backup, sync)
}

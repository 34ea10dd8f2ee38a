package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"github.com/spf13/cobra"
)

var cmdJob = &cobra.Command{
	Use:   "job",
	Short: "Inspect and control jobs",
}

var jobLastDays int

var cmdJobList = &cobra.Command{
	Use:   "list",
	Short: "List the ids of scheduled and running jobs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.JobNames(c))
	},
}

var cmdJobCompleted = &cobra.Command{
	Use:   "completed",
	Short: "List jobs completed during the last days",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.JobCompleted(c, jobLastDays))
	},
}

var cmdJobFailed = &cobra.Command{
	Use:   "failed",
	Short: "List jobs that failed during the last days",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.JobFailed(c, jobLastDays))
	},
}

var cmdJobWarning = &cobra.Command{
	Use:   "warning",
	Short: "List jobs that ended with warnings during the last days",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.JobWarning(c, jobLastDays))
	},
}

var cmdJobPending = &cobra.Command{
	Use:   "pending",
	Short: "List jobs waiting for a worker thread",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.JobPending(c))
	},
}

var cmdJobRunning = &cobra.Command{
	Use:   "running",
	Short: "List currently running jobs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.JobRunning(c))
	},
}

var jobShowTemplate string
var cmdJobShow = &cobra.Command{
	Use:   "show <job>",
	Short: "Show the state of a job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		j := awp5.NewJob(c, args[0])
		printFields(jobShowTemplate, []field{
			{"status", j.Status},
			{"completion", j.Completion},
			{"label", j.Label},
			{"describe", j.Describe},
			{"resource", j.ResourceName},
			{"group", j.ResourceGroup},
			timeField("runat", j.RunAt),
		})
	},
}

var cmdJobReport = &cobra.Command{
	Use:   "report <job>",
	Short: "Print the report of a completed job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printText(awp5.JobReport(c, args[0]))
	},
}

var cmdJobProtocol = &cobra.Command{
	Use:   "protocol <job> [archive-entry]",
	Short: "Print the protocol of a job, optionally for one archived file only",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		entry := ""
		if len(args) > 1 {
			entry = args[1]
		}

		c := openConnection()
		defer c.Close()
		printText(awp5.JobProtocol(c, args[0], entry))
	},
}

var cmdJobXMLTicket = &cobra.Command{
	Use:   "xmlticket <job> [output-file]",
	Short: "Write the XML job ticket and print its path",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		outputFile := ""
		if len(args) > 1 {
			outputFile = args[1]
		}

		c := openConnection()
		defer c.Close()
		printText(awp5.JobXMLTicket(c, args[0], outputFile))
	},
}

var cmdJobInventory = &cobra.Command{
	Use:   "inventory <job> <output-file> [attribute...]",
	Short: "Write the list of files saved by an archive job to a file on the server",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printText(awp5.JobInventory(c, args[0], args[1], args[2:]...))
	},
}

var cmdJobCancel = &cobra.Command{
	Use:   "cancel <job>",
	Short: "Cancel a scheduled job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printBool(awp5.JobCancel(c, args[0]))
	},
}

var cmdJobStop = &cobra.Command{
	Use:   "stop <job>",
	Short: "Stop a running job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printBool(awp5.JobStop(c, args[0]))
	},
}

func init() {
	for _, cmd := range []*cobra.Command{cmdJobCompleted, cmdJobFailed, cmdJobWarning} {
		cmd.Flags().IntVarP(&jobLastDays, "days", "d", 0, "how many days to look back (0: today)")
	}
	addTemplateFlag(cmdJobShow, &jobShowTemplate)
	cmdJob.AddCommand(cmdJobList, cmdJobCompleted, cmdJobFailed, cmdJobWarning, cmdJobPending, cmdJobRunning,
		cmdJobShow, cmdJobReport, cmdJobProtocol, cmdJobXMLTicket, cmdJobInventory, cmdJobCancel, cmdJobStop)
}

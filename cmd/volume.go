package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"github.com/spf13/cobra"
)

var cmdVolume = &cobra.Command{
	Use:   "volume",
	Short: "Inspect and manage volumes",
}

var cmdVolumeList = &cobra.Command{
	Use:   "list",
	Short: "List volume names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.VolumeNames(c))
	},
}

var volumeShowTemplate string
var cmdVolumeShow = &cobra.Command{
	Use:   "show <volume>",
	Short: "Show the state of a volume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		v := awp5.NewVolume(c, args[0])
		printFields(volumeShowTemplate, []field{
			{"barcode", v.Barcode},
			{"mediatype", v.MediaType},
			{"copyof", v.CopyOf},
			{"mode", v.Mode},
			{"state", v.State},
			{"location", v.Location},
			{"label", v.Label},
			{"usage", v.Usage},
			int64Field("usedsize", v.UsedSize),
			int64Field("totalsize", v.TotalSize),
			int64Field("maxsize", v.MaxSize),
			int64Field("usecount", v.UseCount),
			boolField("isonline", v.IsOnline),
			boolField("disabled", v.Disabled),
			timeField("dateused", v.DateUsed),
			timeField("dateexpires", v.DateExpires),
		})
	},
}

var cmdVolumeJobs = &cobra.Command{
	Use:   "jobs <volume>",
	Short: "List the jobs that wrote to a volume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.VolumeJobs(c, args[0]))
	},
}

var cmdVolumeInventory = &cobra.Command{
	Use:   "inventory <volume> <output-file> [attribute...]",
	Short: "Write the list of files on an archive volume to a file on the server",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printText(awp5.VolumeInventory(c, args[0], args[1], args[2:]...))
	},
}

var cmdVolumeEnable = &cobra.Command{
	Use:   "enable <volume>",
	Short: "Enable a volume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		fatalOnError(awp5.VolumeEnable(c, args[0]))
	},
}

var cmdVolumeDisable = &cobra.Command{
	Use:   "disable <volume>",
	Short: "Disable a volume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		fatalOnError(awp5.VolumeDisable(c, args[0]))
	},
}

var cmdVolumeLabel = &cobra.Command{
	Use:   "label <volume> [text]",
	Short: "Print or set the label of a volume",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		if len(args) == 1 {
			printText(awp5.VolumeLabel(c, args[0]))
		} else {
			fatalOnError(awp5.VolumeSetLabel(c, args[0], args[1]))
		}
	},
}

var cmdVolumeLocation = &cobra.Command{
	Use:   "location <volume> [text]",
	Short: "Print or set the offline location of a volume",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		if len(args) == 1 {
			printText(awp5.VolumeLocation(c, args[0]))
		} else {
			fatalOnError(awp5.VolumeSetLocation(c, args[0], args[1]))
		}
	},
}

var cmdVolumeMode = &cobra.Command{
	Use:   "mode <volume> [Appendable|Readonly|Closed|Recyclable|Full]",
	Short: "Print or set the mode of a volume",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		if len(args) == 1 {
			printText(awp5.VolumeMode(c, args[0]))
		} else {
			fatalOnError(awp5.VolumeSetMode(c, args[0], args[1]))
		}
	},
}

var cmdVolumeState = &cobra.Command{
	Use:   "state <volume> [Ok|Suspect|OutOfSync]",
	Short: "Print or set the state of a volume",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		if len(args) == 1 {
			printText(awp5.VolumeState(c, args[0]))
		} else {
			fatalOnError(awp5.VolumeSetState(c, args[0], args[1]))
		}
	},
}

func init() {
	addTemplateFlag(cmdVolumeShow, &volumeShowTemplate)
	cmdVolume.AddCommand(cmdVolumeList, cmdVolumeShow, cmdVolumeJobs, cmdVolumeInventory, cmdVolumeEnable,
		cmdVolumeDisable, cmdVolumeLabel, cmdVolumeLocation, cmdVolumeMode, cmdVolumeState)
}

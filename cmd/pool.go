package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"strconv"

	"github.com/spf13/cobra"
)

var cmdPool = &cobra.Command{
	Use:   "pool",
	Short: "Inspect and manage media pools",
}

var cmdPoolList = &cobra.Command{
	Use:   "list",
	Short: "List pool names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.PoolNames(c))
	},
}

var poolShowTemplate string
var cmdPoolShow = &cobra.Command{
	Use:   "show <pool>",
	Short: "Show the state of a pool",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		p := awp5.NewPool(c, args[0])
		printFields(poolShowTemplate, []field{
			{"usage", p.Usage},
			{"mediatype", p.MediaType},
			int64Field("usedsize", p.UsedSize),
			int64Field("totalsize", p.TotalSize),
			intField("drivecount", p.DriveCount),
			boolField("disabled", p.Disabled),
		})
	},
}

var (
	poolCreateUsage     string
	poolCreateMediaType string
	poolCreateBlockSize int
)

var cmdPoolCreate = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a media pool",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var options []string
		if poolCreateUsage != "" {
			options = append(options, "usage", poolCreateUsage)
		}
		if poolCreateMediaType != "" {
			options = append(options, "mediatype", poolCreateMediaType)
		}
		if poolCreateBlockSize != 0 {
			options = append(options, "blocksize", strconv.Itoa(poolCreateBlockSize))
		}

		c := openConnection()
		defer c.Close()
		printText(awp5.PoolCreate(c, args[0], options...))
	},
}

var cmdPoolVolumes = &cobra.Command{
	Use:   "volumes <pool>",
	Short: "List the volumes labeled for a pool",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.PoolVolumes(c, args[0]))
	},
}

func init() {
	cmdPoolCreate.Flags().StringVarP(&poolCreateUsage, "usage", "", "", "pool usage: Archive or Backup (default: Archive)")
	cmdPoolCreate.Flags().StringVarP(&poolCreateMediaType, "mediatype", "", "", "media type: TAPE or DISK (default: TAPE)")
	cmdPoolCreate.Flags().IntVarP(&poolCreateBlockSize, "blocksize", "", 0, "tape block size in bytes, a power of two between 32768 and 524288")
	addTemplateFlag(cmdPoolShow, &poolShowTemplate)
	cmdPool.AddCommand(cmdPoolList, cmdPoolShow, cmdPoolCreate, cmdPoolVolumes)
}

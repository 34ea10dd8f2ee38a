package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdJukebox = &cobra.Command{
	Use:   "jukebox",
	Short: "Inspect and control tape libraries",
}

var cmdJukeboxList = &cobra.Command{
	Use:   "list",
	Short: "List jukebox names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.JukeboxNames(c))
	},
}

var jukeboxShowTemplate string
var cmdJukeboxShow = &cobra.Command{
	Use:   "show <jukebox>",
	Short: "Show the state of a jukebox",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		j := awp5.NewJukebox(c, args[0])
		printFields(jukeboxShowTemplate, []field{
			intField("slotcount", j.SlotCount),
		})
	},
}

var (
	jukeboxInventoryBarcode   bool
	jukeboxInventoryStartSlot int
	jukeboxInventoryEndSlot   int
)

var cmdJukeboxInventory = &cobra.Command{
	Use:   "inventory <jukebox>",
	Short: "Start a jukebox inventory job and print its id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printText(awp5.JukeboxInventory(c, args[0], jukeboxInventoryBarcode, jukeboxInventoryStartSlot, jukeboxInventoryEndSlot))
	},
}

var cmdJukeboxLabel = &cobra.Command{
	Use:   "label <jukebox> <pool> [slot...]",
	Short: "Start a label job for the given pool and print its id",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		slots := parseSlots(args[2:])

		c := openConnection()
		defer c.Close()
		printText(awp5.JukeboxLabel(c, args[0], args[1], slots...))
	},
}

var cmdJukeboxReset = &cobra.Command{
	Use:   "reset <jukebox>",
	Short: "Reset the jukebox hardware",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		fatalOnError(awp5.JukeboxReset(c, args[0]))
	},
}

var cmdJukeboxVolumes = &cobra.Command{
	Use:   "volumes <jukebox> [slot...]",
	Short: "List the volumes in the jukebox, optionally for the given slots only",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		slots := parseSlots(args[1:])

		c := openConnection()
		defer c.Close()
		printNames(awp5.JukeboxVolumes(c, args[0], slots...))
	},
}

func parseSlots(args []string) []int {
	slots := make([]int, 0, len(args))
	for _, a := range args {
		s, err := strconv.Atoi(a)
		if err != nil {
			logrus.Fatalf("invalid slot number: %s", a)
		}
		slots = append(slots, s)
	}
	return slots
}

func init() {
	cmdJukeboxInventory.Flags().BoolVarP(&jukeboxInventoryBarcode, "barcode", "b", false, "trust barcodes instead of mounting every volume")
	cmdJukeboxInventory.Flags().IntVarP(&jukeboxInventoryStartSlot, "start", "", 0, "first slot to inventory")
	cmdJukeboxInventory.Flags().IntVarP(&jukeboxInventoryEndSlot, "end", "", 0, "last slot to inventory")
	addTemplateFlag(cmdJukeboxShow, &jukeboxShowTemplate)
	cmdJukebox.AddCommand(cmdJukeboxList, cmdJukeboxShow, cmdJukeboxInventory, cmdJukeboxLabel, cmdJukeboxReset, cmdJukeboxVolumes)
}

package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdDevice = &cobra.Command{
	Use:   "device",
	Short: "Inspect and manage tape devices",
}

var cmdDeviceList = &cobra.Command{
	Use:   "list",
	Short: "List device names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.DeviceNames(c))
	},
}

var deviceShowTemplate string
var cmdDeviceShow = &cobra.Command{
	Use:   "show <device>",
	Short: "Show the state of a device",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		d := awp5.NewDevice(c, args[0])
		printFields(deviceShowTemplate, []field{
			boolField("cleaning", d.Cleaning),
		})
	},
}

var cmdDeviceCleaning = &cobra.Command{
	Use:   "cleaning <device> [on|off]",
	Short: "Print or set the cleaning flag of a device",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		if len(args) == 1 {
			printBool(awp5.DeviceCleaning(c, args[0]))
			return
		}

		switch args[1] {
		case "on", "1", "true":
			fatalOnError(awp5.DeviceSetCleaning(c, args[0], true))
		case "off", "0", "false":
			fatalOnError(awp5.DeviceSetCleaning(c, args[0], false))
		default:
			logrus.Fatalf("invalid cleaning flag: %s", args[1])
		}
	},
}

var cmdDeviceInventory = &cobra.Command{
	Use:   "inventory <device>",
	Short: "Mount the loaded volume and print its name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printText(awp5.DeviceInventory(c, args[0]))
	},
}

func init() {
	addTemplateFlag(cmdDeviceShow, &deviceShowTemplate)
	cmdDevice.AddCommand(cmdDeviceList, cmdDeviceShow, cmdDeviceCleaning, cmdDeviceInventory)
}

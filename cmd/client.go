package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"github.com/spf13/cobra"
)

var cmdClient = &cobra.Command{
	Use:   "client",
	Short: "Inspect registered P5 clients",
}

var cmdClientList = &cobra.Command{
	Use:   "list",
	Short: "List client names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.ClientNames(c))
	},
}

var clientShowTemplate string
var cmdClientShow = &cobra.Command{
	Use:   "show <client>",
	Short: "Show the registration of a client",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		cl := awp5.NewClient(c, args[0])
		printFields(clientShowTemplate, []field{
			{"hostname", cl.Hostname},
			intField("port", cl.Port),
			boolField("isthin", cl.IsThin),
			{"describe", cl.Describe},
		})
	},
}

var clientPingTimeout int
var cmdClientPing = &cobra.Command{
	Use:   "ping <client>",
	Short: "Check that the client agent is reachable; prints 1 when it is",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printInt(awp5.ClientPing(c, args[0], clientPingTimeout))
	},
}

func init() {
	cmdClientPing.Flags().IntVarP(&clientPingTimeout, "wait", "", 0, "seconds to wait for the client agent (0: server default)")
	addTemplateFlag(cmdClientShow, &clientShowTemplate)
	cmdClient.AddCommand(cmdClientList, cmdClientShow, cmdClientPing)
}

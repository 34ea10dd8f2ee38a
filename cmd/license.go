package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdLicense = &cobra.Command{
	Use:   "license",
	Short: "Inspect installed licenses",
}

var cmdLicenseList = &cobra.Command{
	Use:   "list",
	Short: "List license resource names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()
		printNames(awp5.LicenseResources(c))
	},
}

var cmdLicenseShow = &cobra.Command{
	Use:   "show",
	Short: "Show the free license count per resource",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		resources, err := awp5.LicenseResources(c)
		if err != nil {
			logrus.Fatal(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for _, r := range resources {
			free, err := awp5.LicenseFree(c, r)
			if err != nil {
				logrus.Warnf("cannot read free count of %s: %v", r, err)
				continue
			}
			if free == awp5.LicenseUnlimited {
				fmt.Fprintf(w, "%s\tunlimited\n", r)
			} else {
				fmt.Fprintf(w, "%s\t%d\n", r, free)
			}
		}
		fatalOnError(w.Flush())
	},
}

var cmdLicenseFree = &cobra.Command{
	Use:   "free <resource>",
	Short: "Print the free license count of a resource",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		free, err := awp5.LicenseFree(c, args[0])
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Println(free)
	},
}

func init() {
	cmdLicense.AddCommand(cmdLicenseList, cmdLicenseShow, cmdLicenseFree)
}

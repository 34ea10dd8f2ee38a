package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"time"

	"github.com/spf13/cobra"
)

var srvInfoTemplate string
var cmdSrvInfo = &cobra.Command{
	Use:   "srvinfo",
	Short: "Show server information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := openConnection()
		defer c.Close()

		s := awp5.NewSrvInfo(c)
		printFields(srvInfoTemplate, []field{
			{"version", s.Version},
			{"lexxvers", s.LexxVers},
			{"buildstamp", s.BuildStamp},
			{"servername", s.ServerName},
			{"hostname", s.Hostname},
			{"address", s.Address},
			intField("port", s.Port),
			{"platform", s.Platform},
			{"hostid", s.HostID},
			durationField("uptime", s.Uptime),
		})
	},
}

func durationField(name string, get func() (time.Duration, error)) field {
	return field{name, func() (string, error) {
		v, err := get()
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}}
}

func init() {
	addTemplateFlag(cmdSrvInfo, &srvInfoTemplate)
}

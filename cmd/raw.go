package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rawQuote bool
var cmdRaw = &cobra.Command{
	Use:   "raw <word>...",
	Short: "Send a raw nsdchat command and print the reply",
	Long: strings.TrimSpace(`
Send a command to the server exactly as given, one argument per command
word. A single argument containing spaces is split following shell
syntax, so both forms work:

    awp5 raw Job names
    awp5 raw "Job names"

With --quote, arguments containing spaces are brace-quoted instead of
split, for values the server must receive as one word.
	`),
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		words := args
		if !rawQuote && len(args) == 1 && strings.ContainsAny(args[0], " \t") {
			var err error
			words, err = shlex.Split(args[0])
			if err != nil {
				logrus.Fatal(err)
			}
		}

		c := openConnection()
		defer c.Close()

		var reply awp5.Reply
		var err error
		if rawQuote {
			reply, err = c.Exec(awp5.NewCmd(words...))
		} else {
			reply, err = c.Exec(awp5.RawCmd(words...))
		}
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Println(reply.Text())
	},
}

func init() {
	cmdRaw.Flags().BoolVarP(&rawQuote, "quote", "q", false, "brace-quote arguments containing blanks")
}

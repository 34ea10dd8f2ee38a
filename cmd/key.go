package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/lib"

	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"filippo.io/age"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdKeyGen = &cobra.Command{
	Use:   "gen [private-key-file] [public-key-file]",
	Short: "Create a key pair used for encrypting bundles",
	Args:  cobra.MaximumNArgs(2),
	Long: strings.TrimSpace(`
Create a new age X25519 key pair. If no argument is given, output the
private key on standard output. If only one argument is given, write
the private key in a file given by the first argument. If both
arguments are given, additionally write the public key in a file given
by the second argument.
	`),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := age.GenerateX25519Identity()
		if err != nil {
			logrus.Fatal(err)
		}

		keyData := fmt.Sprintf("# created: %s\n# public key: %s\n%s\n",
			time.Now().Format(time.RFC3339), id.Recipient(), id)

		if len(args) == 0 {
			fmt.Print(keyData)
		} else {
			if err := os.WriteFile(args[0], []byte(keyData), 0600); err != nil {
				logrus.Fatal(err)
			}

			if len(args) == 2 {
				if err := os.WriteFile(args[1], []byte(id.Recipient().String()+"\n"), 0666); err != nil {
					logrus.Fatal(err)
				}
			}
		}
	},
}

var cmdKeyPub = &cobra.Command{
	Use:   "pub [private-key-file]",
	Short: "Print the public key of a private key",
	Args:  cobra.MaximumNArgs(1),
	Long: strings.TrimSpace(`
Print the public key derived from a private key. If no argument is
given, the private key is read from standard input.
	`),
	Run: func(cmd *cobra.Command, args []string) {
		keyFile := ""
		key := ""
		if len(args) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				logrus.Fatal(err)
			}
			key = string(data)
		} else {
			keyFile = args[0]
		}

		recipients, err := awp5.LoadRecipients(keyFile, key)
		if err != nil {
			logrus.Fatal(err)
		}

		for _, r := range recipients {
			fmt.Println(r)
		}
	},
}

var cmdKey = &cobra.Command{
	Use:   "key",
	Short: "Encryption keys management",
}

func init() {
	cmdKey.AddCommand(cmdKeyGen, cmdKeyPub)
}

package cmd

import (
	"github.com/ThomasWaldinger/go-awp5/container"
	"github.com/ThomasWaldinger/go-awp5/lib"

	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdExport = &cobra.Command{
	Use:   "export",
	Short: "Export job reports to a destination",
}

// One line of the exported bundle payload. Fields the server cannot
// provide for a given job are left out.
type jobRecord struct {
	Name       string `json:"name"`
	Status     string `json:"status,omitempty"`
	Completion string `json:"completion,omitempty"`
	Label      string `json:"label,omitempty"`
	Describe   string `json:"describe,omitempty"`
	Report     string `json:"report,omitempty"`
}

func collectJob(c *awp5.Connection, name string) jobRecord {
	j := awp5.NewJob(c, name)
	rec := jobRecord{Name: name}

	if v, err := j.Status(); err == nil {
		rec.Status = v
	} else {
		logrus.WithFields(logrus.Fields{"job": name}).Warnf("cannot read status: %v", err)
	}
	if v, err := j.Completion(); err == nil {
		rec.Completion = v
	}
	if v, err := j.Label(); err == nil {
		rec.Label = v
	}
	if v, err := j.Describe(); err == nil {
		rec.Describe = v
	}
	if v, err := j.Report(); err == nil {
		rec.Report = v
	} else {
		logrus.WithFields(logrus.Fields{"job": name}).Warnf("cannot read report: %v", err)
	}

	return rec
}

var (
	cmdExportJobsLastDays         int
	cmdExportJobsNoPrune          bool
	cmdExportJobsCompressionLevel int

	cmdExportJobs = &cobra.Command{
		Use:   "jobs <destination> [job-id...]",
		Short: "Collect job reports into a bundle and store it on a destination",
		Long: strings.TrimSpace(`
Collect the reports of the jobs that completed, failed or ended with
warnings during the last days (or of the jobs given explicitly) and
store them as a single bundle on the destination. Give a Key or
KeyFile destination option to encrypt the bundle, and RetentionPolicy
options to expire old bundles after the upload.
	`),
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dstOpts := destinationOptions(args[0]).
				WithDestination().
				WithRetentionPolicies().
				WithRecipients().
				FatalOnError()

			c := openConnection()
			defer c.Close()

			names := args[1:]
			if len(names) == 0 {
				for _, list := range []func(*awp5.Connection, int) ([]string, error){
					awp5.JobCompleted, awp5.JobFailed, awp5.JobWarning,
				} {
					batch, err := list(c, cmdExportJobsLastDays)
					if err != nil {
						logrus.Fatal(err)
					}
					names = append(names, batch...)
				}
				sort.Strings(names)
			}

			records := make([]jobRecord, 0, len(names))
			seen := make(map[string]struct{}, len(names))
			for _, name := range names {
				if _, ok := seen[name]; ok {
					continue
				}
				seen[name] = struct{}{}
				records = append(records, collectJob(c, name))
			}
			if len(records) == 0 {
				logrus.Print("no jobs to export")
				return
			}

			bundles, err := awp5.SortedListBundles(dstOpts.Destination)
			if err != nil {
				logrus.Fatal(err)
			}

			bundle := awp5.NewBundle("jobs", time.Now())

			pr, pw := io.Pipe()
			cw, err := container.NewWriter(pw, dstOpts.Recipients, bundle.Scope, cmdExportJobsCompressionLevel)
			if err != nil {
				logrus.Fatal(err)
			}

			go func() {
				enc := json.NewEncoder(cw)
				for _, rec := range records {
					if err := enc.Encode(rec); err != nil {
						pw.CloseWithError(err)
						return
					}
				}

				pw.CloseWithError(cw.Close())
			}()

			err = dstOpts.Destination.SendBundle(bundle, pr)
			if err != nil {
				logrus.Fatal(err)
			}
			logrus.Printf("exported %d jobs as %s", len(records), bundle.Filename())

			if !cmdExportJobsNoPrune {
				err = awp5.PruneBundles(dstOpts.Destination, append([]awp5.Bundle{bundle}, bundles...), dstOpts.RetentionPolicies)
				if err != nil {
					logrus.Warnf("cannot prune bundles: %v", err)
				}
			}
		},
	}
)

var cmdExportList = &cobra.Command{
	Use:   "list <destination>",
	Short: "List bundles on a destination",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dstOpts := destinationOptions(args[0]).
			WithDestination().
			FatalOnError()

		bundles, err := awp5.SortedListBundles(dstOpts.Destination)
		if err != nil {
			logrus.Fatal(err)
		}

		for i := len(bundles) - 1; i >= 0; i-- {
			fmt.Println(bundles[i].Name())
		}
	},
}

// findBundle resolves a bundle name prefix, or the most recent bundle
// when the prefix is empty.
func findBundle(dst awp5.Destination, prefix string) (awp5.Bundle, error) {
	bundles, err := awp5.SortedListBundles(dst)
	if err != nil {
		return awp5.Bundle{}, err
	}

	for _, b := range bundles {
		if strings.HasPrefix(b.Name(), prefix) {
			return b, nil
		}
	}
	return awp5.Bundle{}, fmt.Errorf("cannot find bundle %q", prefix)
}

var (
	cmdExportFetchTargetDir string

	cmdExportFetch = &cobra.Command{
		Use:   "fetch <destination> [bundle-name]",
		Short: "Fetch a bundle file (default: the last one) from a destination",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			targetName := ""
			if len(args) > 1 {
				targetName = args[1]
			}

			dstOpts := destinationOptions(args[0]).
				WithDestination().
				FatalOnError()

			bundle, err := findBundle(dstOpts.Destination, targetName)
			if err != nil {
				logrus.Fatal(err)
			}

			logrus.Printf("fetching %v", bundle.Filename())
			data, err := dstOpts.Destination.ReceiveBundle(bundle)
			if err != nil {
				logrus.Fatal(err)
			}
			defer data.Close()

			f, err := os.OpenFile(path.Join(cmdExportFetchTargetDir, bundle.Filename()), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
			if err != nil {
				logrus.Fatal(err)
			}
			defer f.Close()

			_, err = io.Copy(f, data)
			if err != nil {
				logrus.Fatal(err)
			}
		},
	}
)

var cmdExportCat = &cobra.Command{
	Use:   "cat <destination> [bundle-name]",
	Short: "Print the decoded payload of a bundle (default: the last one)",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		targetName := ""
		if len(args) > 1 {
			targetName = args[1]
		}

		dstOpts := destinationOptions(args[0]).
			WithDestination().
			WithIdentities().
			FatalOnError()

		bundle, err := findBundle(dstOpts.Destination, targetName)
		if err != nil {
			logrus.Fatal(err)
		}

		data, err := dstOpts.Destination.ReceiveBundle(bundle)
		if err != nil {
			logrus.Fatal(err)
		}
		defer data.Close()

		r, err := container.NewReader(data)
		if err != nil {
			logrus.Fatal(err)
		}

		err = r.Unseal(dstOpts.Identities)
		if err != nil {
			logrus.Fatal(err)
		}

		_, err = io.Copy(os.Stdout, r)
		if err != nil {
			logrus.Fatal(err)
		}
	},
}

var cmdExportRemove = &cobra.Command{
	Use:   "rm <destination> <bundle-name>",
	Short: "Remove a bundle from a destination",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		bundle, err := awp5.ParseBundleFilename(args[1], false)
		if err != nil {
			logrus.Fatal(err)
		}

		dstOpts := destinationOptions(args[0]).
			WithDestination().
			FatalOnError()

		fatalOnError(dstOpts.Destination.RemoveBundle(bundle))
	},
}

var (
	cmdExportPruneDryRun bool

	cmdExportPrune = &cobra.Command{
		Use:   "prune <destination>",
		Short: "Prune bundles on a destination according to its retention policies",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dstOpts := destinationOptions(args[0]).
				WithDestination().
				WithRetentionPolicies().
				FatalOnError()

			bundles, err := awp5.SortedListBundles(dstOpts.Destination)
			if err != nil {
				logrus.Fatal(err)
			}

			pruned, err := awp5.GetPrunedBundles(bundles, dstOpts.RetentionPolicies)
			if err != nil {
				logrus.Fatal(err)
			}

			for _, b := range pruned {
				fmt.Println(b.Name())
				if !cmdExportPruneDryRun {
					err = dstOpts.Destination.RemoveBundle(b)
					if err != nil {
						logrus.WithFields(logrus.Fields{"bundle": b.Name()}).Warnf("cannot remove bundle: %v", err)
					}
				}
			}
		},
	}
)

func init() {
	cmdExportJobs.Flags().IntVarP(&cmdExportJobsLastDays, "days", "d", 0, "how many days to look back (0: today)")
	cmdExportJobs.Flags().BoolVarP(&cmdExportJobsNoPrune, "no-prune", "n", false, "do not prune old bundles after the upload")
	cmdExportJobs.Flags().IntVarP(&cmdExportJobsCompressionLevel, "compression-level", "z", 3, "compression level")
	cmdExportFetch.Flags().StringVarP(&cmdExportFetchTargetDir, "target-dir", "d", ".", "target dir")
	cmdExportPrune.Flags().BoolVarP(&cmdExportPruneDryRun, "dry-run", "n", false, "do not actually remove anything, just print the bundles that would be removed")

	cmdExport.AddCommand(cmdExportJobs, cmdExportList, cmdExportFetch, cmdExportCat, cmdExportRemove, cmdExportPrune)
}

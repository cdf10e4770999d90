package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/liblicense/liblicense/utils"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func readPrefixes(cmd *cobra.Command, filename string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return utils.ReadLines(r)
}

func newBatchCmd() *cobra.Command {
	var (
		opts    issueOptions
		workers int
	)

	batch := &cobra.Command{
		Use:   "batch [flags] filename",
		Short: "Generate license keys for a list of prefixes",
		Long:  `Generate one license key per line of the file, "-" reads standard input. Blank lines and lines starting with '#' are skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return fmt.Errorf("invalid workers: %d", workers)
			}
			issuer, err := opts.issuer(cmd)
			if err != nil {
				return err
			}
			prefixes, err := readPrefixes(cmd, args[0])
			if err != nil {
				return err
			}

			records := make([]*Record, len(prefixes))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i, prefix := range prefixes {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					record, err := issuer.Issue(prefix)
					if err != nil {
						return fmt.Errorf("prefix %d: %w", i+1, err)
					}
					records[i] = record
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			logger.Infof("issued %d license keys", len(records))

			if opts.output == OutputText {
				for _, record := range records {
					cmd.Println(record.Key)
				}
				return nil
			}
			return write(cmd.OutOrStdout(), records, opts.output)
		},
	}

	opts.bind(batch)
	batch.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "Number of keys generated concurrently.")

	return batch
}

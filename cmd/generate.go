package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// issueOptions are the flags shared by generate and batch.
type issueOptions struct {
	prefixed   bool
	groupSize  int
	hash       string
	algorithms []string
	defines    []string
	output     string
}

func (opts *issueOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&opts.prefixed, "prefixed", "", true, "Embed the prefix into the key.")
	cmd.Flags().IntVarP(&opts.groupSize, "group-size", "g", 6, "Number of hex characters per group.")
	cmd.Flags().StringVarP(&opts.hash, "hash", "", "sha-1", "Digest used for every group.")
	cmd.Flags().StringArrayVarP(&opts.algorithms, "algorithm", "a", nil, "Subkey algorithm or alias to generate, in order. Defaults to all configured algorithms.")
	cmd.Flags().StringArrayVarP(&opts.defines, "define", "", nil, "Define an extra algorithm as name=type[:key=value,...].")
	cmd.Flags().StringVarP(&opts.output, "output", "o", OutputText, "Output format: text, json, yaml or msgpack.")
}

// issuer applies the flags that were set on top of the configuration.
func (opts *issueOptions) issuer(cmd *cobra.Command) (*issuer, error) {
	if err := checkOutput(opts.output, OutputText, OutputJSON, OutputYAML, OutputMsgPack); err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("prefixed") {
		cfg.Prefixed = opts.prefixed
	}
	if flags.Changed("group-size") {
		cfg.GroupSize = opts.groupSize
	}
	if flags.Changed("hash") {
		cfg.Hash = opts.hash
	}
	if err := addDefinitions(cfg, opts.defines); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return newIssuer(cfg, opts.algorithms)
}

func newGenerateCmd() *cobra.Command {
	var (
		opts   issueOptions
		prefix string
	)

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a license key",
		Long:  `Generate a license key for a license holder. The prefix usually carries the holder's name or e-mail address.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			issuer, err := opts.issuer(cmd)
			if err != nil {
				return err
			}
			record, err := issuer.Issue(prefix)
			if err != nil {
				return err
			}
			logger.Debugw("license key issued", "id", record.ID, "algorithms", record.Algorithms)

			if opts.output == OutputText {
				cmd.Println(record.Key)
				return nil
			}
			return write(cmd.OutOrStdout(), record, opts.output)
		},
	}

	opts.bind(generate)
	generate.Flags().StringVarP(&prefix, "prefix", "p", "", "License holder information.")
	_ = generate.MarkFlagRequired("prefix")

	return generate
}

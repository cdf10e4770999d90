package cmd

import (
	"fmt"

	"github.com/liblicense/liblicense/pkg/license"
	"github.com/liblicense/liblicense/pkg/licenser"
	"github.com/liblicense/liblicense/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type verification struct {
	Key    string               `json:"key" yaml:"key"`
	Result license.Verification `json:"result" yaml:"result"`
	Active []string             `json:"active" yaml:"active"`
	Policy licenser.Policy      `json:"policy" yaml:"policy"`
	Holder *bool                `json:"issued_to_holder,omitempty" yaml:"issued_to_holder,omitempty"`
}

func newVerifyCmd() *cobra.Command {
	var (
		algorithms []string
		defines    []string
		policy     string
		holder     string
		filename   string
		output     string
	)

	verify := &cobra.Command{
		Use:   "verify [flags] [key]",
		Short: "Verify a license key",
		Long: `Verify a license key against the active algorithms. The key is read from the argument, the --file flag or the LIBLICENSE_KEY environment variable.
Exits with a non-zero status unless the key is valid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output, OutputText, OutputJSON, OutputYAML); err != nil {
				return err
			}
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			key, err := licenser.Load(arg, filename)
			if err != nil {
				return err
			}

			if len(algorithms) > 0 {
				cfg.Verify.Active = algorithms
			}
			if cmd.Flags().Changed("policy") {
				cfg.Verify.Policy = licenser.Policy(policy)
			}
			if err := addDefinitions(cfg, defines); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}
			l, err := cfg.Licenser(licenser.WithLogger(logger))
			if err != nil {
				return err
			}

			v := verification{
				Key:    key,
				Result: l.Check(key),
				Active: l.Active(),
				Policy: cfg.Verify.Policy,
			}
			if holder != "" && v.Result == license.Success {
				issued := l.IssuedTo(key, license.EncodePrefix(holder))
				v.Holder = &issued
			}

			if output == OutputText {
				color := utils.ColorGreen
				if v.Result != license.Success {
					color = utils.ColorRed
				}
				cmd.Println(utils.Colorize(v.Result, color, cfg.Log.Colored))
			} else if err := write(cmd.OutOrStdout(), v, output); err != nil {
				return err
			}

			if err := v.Result.Err(); err != nil {
				return err
			}
			if v.Holder != nil && !*v.Holder {
				return fmt.Errorf("license key was not issued to %q", holder)
			}
			return nil
		},
	}

	verify.Flags().StringArrayVarP(&algorithms, "algorithm", "a", nil, "Active algorithm or alias, overrides the configured ones.")
	verify.Flags().StringArrayVarP(&defines, "define", "", nil, "Define an extra algorithm as name=type[:key=value,...].")
	verify.Flags().StringVarP(&policy, "policy", "", string(licenser.PolicyAll), "How active algorithms combine: all or any.")
	verify.Flags().StringVarP(&holder, "holder", "", "", "Also check that the key was issued to this license holder.")
	verify.Flags().StringVarP(&filename, "file", "f", "", "Read the key from a file.")
	verify.Flags().StringVarP(&output, "output", "o", OutputText, "Output format: text, json or yaml.")

	return verify
}

package cmd

import (
	"github.com/liblicense/liblicense/pkg/license"
	"github.com/spf13/cobra"
)

// inspection is the decomposition of a key. Holder is the prefix with its
// ';' separators turned back into line breaks. Digests lists the digests
// its checksum is valid for.
type inspection struct {
	Prefix    string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Holder    string   `json:"holder,omitempty" yaml:"holder,omitempty"`
	Prefixed  bool     `json:"prefixed" yaml:"prefixed"`
	Seed      string   `json:"seed" yaml:"seed"`
	Subkeys   []string `json:"subkeys" yaml:"subkeys"`
	Checksum  string   `json:"checksum" yaml:"checksum"`
	GroupSize int      `json:"group_size" yaml:"group_size"`
	Digests   []string `json:"checksum_valid_for" yaml:"checksum_valid_for"`
}

func inspect(text string) (*inspection, error) {
	key, err := license.Parse(text)
	if err != nil {
		return nil, err
	}

	i := &inspection{
		Prefix:    key.Prefix,
		Holder:    license.DecodePrefix(key.Prefix),
		Prefixed:  key.Prefixed,
		Seed:      key.Seed,
		Subkeys:   key.Subkeys,
		Checksum:  key.Checksum,
		GroupSize: key.GroupSize,
		Digests:   []string{},
	}
	for _, method := range license.Digests() {
		digest, err := license.NewDigest(method)
		if err != nil {
			return nil, err
		}
		if _, result := license.New(license.WithDigest(digest)).VerifyChecksum(text); result == license.Success {
			i.Digests = append(i.Digests, method)
		}
	}
	return i, nil
}

func newInspectCmd() *cobra.Command {
	var output string

	inspectCmd := &cobra.Command{
		Use:   "inspect [flags] key",
		Short: "Print the groups of a license key",
		Long:  `Print the groups of a license key and the digests its checksum is valid for.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output, OutputJSON, OutputYAML); err != nil {
				return err
			}
			i, err := inspect(args[0])
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), i, output)
		},
	}

	inspectCmd.Flags().StringVarP(&output, "output", "o", OutputYAML, "Output format: json or yaml.")

	return inspectCmd
}

package cmd

import (
	"github.com/liblicense/liblicense"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	version := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Long:  `Print the version with a short commit hash.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("liblicense %s (%s)\n", liblicense.VERSION, liblicense.COMMIT)
		},
	}
	// no configuration needed
	version.PersistentPreRun = func(cmd *cobra.Command, args []string) {}
	return version
}

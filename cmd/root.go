package cmd

import (
	"os"

	"github.com/liblicense/liblicense/config"
	"github.com/liblicense/liblicense/pkg/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configurationFile string
	verbose           bool

	cfg    *config.Config
	logger *zap.SugaredLogger
)

func initConfig(filename string) (*config.Config, error) {
	cfg := config.New()
	if err := config.Load(filename, cfg); err != nil {
		return nil, errors.Wrap(err, "could not load configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := initConfig(configurationFile)
	if err != nil {
		return err
	}
	if verbose {
		c.Log.Level = config.LogLevelDebug
	}
	l, err := log.NewZapLogger(&c.Log)
	if err != nil {
		return errors.Wrap(err, "could not create logger")
	}
	cfg, logger = c, l
	return nil
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "liblicense",
		Short:             "Generate and verify partial license keys",
		Long:              ``,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.SetOut(os.Stdout)
	cmd.PersistentFlags().StringVarP(&configurationFile, "config", "", "", "The configuration filename")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "", false, "Verbose logging.")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for mcdm.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/mcdm/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configKeyAnnotation marks flags that override a configuration key of the
// same name. Several subcommands define the same flag, so binding happens
// for the executing command only.
const configKeyAnnotation = "mcdm/config-key"

// Version is reported by --version; release builds set it with -ldflags.
var Version = "dev"

// app is the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	cfg     config.Config
	log     *slog.Logger
}

// NewRootCommand builds a fresh mcdm command tree with its own viper
// instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "mcdm",
		Short: "Rank alternatives with multi-criteria decision methods",
		Long: `mcdm ranks the alternatives of a decision problem with MCDA methods.

A problem file (YAML or TOML) holds the decision matrix, the criterion types
and optionally weights, labels and method parameters.

Quick Start:
  mcdm rank cars.yaml                      # TOPSIS scores and ranks
  mcdm rank cars.yaml --method vikor       # another method
  mcdm weights cars.yaml --method entropy  # objective weights
  mcdm compare cars.yaml --methods topsis,vikor,spotis
  mcdm comet cars.yaml                     # COMET with a TOPSIS lattice
  mcdm methods                             # everything registered`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .mcdm.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.String("format", config.DefaultFormat, "output format: table or json")
	pf.Int("precision", config.DefaultPrecision, "decimals printed in tables")
	configFlags(pf, "format", "precision")

	root.AddCommand(
		a.rankCommand(),
		a.weightsCommand(),
		a.compareCommand(),
		a.cometCommand(),
		a.methodsCommand(),
	)

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup reads configuration and installs the logger before any subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}
	if err := a.bindFlags(cmd); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	if a.verbose {
		lvl = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.log.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "method", cfg.Method, "format", cfg.Format)

	return nil
}

// initConfig only fails when an explicit --config file cannot be read.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(".mcdm")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}

	a.v.SetEnvPrefix("MCDM")
	a.v.AutomaticEnv()

	// A missing default config file is fine; we use defaults.
	if err := a.v.ReadInConfig(); err != nil && a.cfgFile != "" {
		return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
	}

	return nil
}

// configFlags marks the named flags of fs as configuration overrides.
func configFlags(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = fs.SetAnnotation(name, configKeyAnnotation, []string{name})
	}
}

// bindFlags binds the marked flags of cmd, inherited ones included, to viper.
func (a *app) bindFlags(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[configKeyAnnotation]
		if err != nil || len(keys) == 0 {
			return
		}
		err = a.v.BindPFlag(keys[0], f)
	})

	return err
}

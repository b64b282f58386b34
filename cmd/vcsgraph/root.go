package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/vcsgraph/cmd/ui"
	"github.com/utkarsh5026/vcsgraph/pkg/common/logger"
	"github.com/utkarsh5026/vcsgraph/pkg/config"
)

// rootOptions holds the persistent flags and the loaded configuration
type rootOptions struct {
	configPath string
	repoPath   string
	maxCount   int
	logLevel   string
	headOrder  string
	noColor    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "vcsgraph",
		Short: "Build and draw commit graphs",
		Long: `vcsgraph turns a commit history into a compact permanent graph and
assigns every commit a lane, the way a VCS log view draws its graph.

History is read from a log file produced by

  git log --all --topo-order --format='%H%x09%ct%x09%P%x09%D' > history.log

from standard input ("-"), or straight from a repository with --repo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ./"+config.DefaultFileName+")")
	flags.StringVar(&opts.repoPath, "repo", "", "Read history from the git repository at this path")
	flags.IntVarP(&opts.maxCount, "max-count", "n", 0, "Read at most this many commits from --repo")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.headOrder, "head-order", "", "Head order for lanes: index, time, refs")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colours")

	cmd.AddCommand(
		newLogCmd(opts),
		newHeadsCmd(opts),
		newShowCmd(opts),
		newMergeBaseCmd(opts),
		newStatsCmd(opts),
		newDotCmd(opts),
	)

	return cmd
}

// init loads the configuration and applies flag overrides
func (o *rootOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.headOrder != "" {
		cfg.Layout.HeadOrder = o.headOrder
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if o.noColor {
		cfg.Render.Color = false
	}

	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger.SetOutput(cmd.ErrOrStderr())
	if err := logger.SetLevel(level); err != nil {
		return err
	}

	ui.SetColor(cfg.Render.Color)
	o.cfg = cfg

	if o.maxCount < 0 {
		return fmt.Errorf("--max-count must not be negative")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cyclone1070/palm/internal/config"
	"github.com/Cyclone1070/palm/internal/logging"
	"github.com/spf13/cobra"
)

// app holds what the subcommands share: flags and the lazily loaded
// ui_config.json. The logger travels on the command context.
type app struct {
	logLevel  string
	logFormat string
	uiConfig  string

	loader *config.Loader
	cfg    *config.Config
}

// Config loads ui_config.json on first use.
func (a *app) Config(ctx context.Context) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	if a.uiConfig != "" {
		a.loader.SetConfigFile(a.uiConfig)
	}
	cfg, err := a.loader.Load()
	if err != nil {
		return nil, err
	}
	if path, err := a.loader.Path(); err == nil {
		logging.FromContext(ctx).Debug("loaded config", "path", path)
	}
	a.cfg = cfg
	return cfg, nil
}

// NewRootCmd returns the palm command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.NewLoader())
}

func newRootCmd(loader *config.Loader) *cobra.Command {
	a := &app{loader: loader}

	cmd := &cobra.Command{
		Use:           "palm",
		Short:         "Run and inspect pALM valuations and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithContext(cmd.Context(), logger))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", logging.TextFormat,
		fmt.Sprintf("log format (%s)", strings.Join(logging.Formats, ", ")))
	pf.StringVar(&a.uiConfig, "ui-config", "", "path to ui_config.json (default: ./"+config.ConfigFile+")")

	cmd.AddCommand(
		newPathCmd(),
		newConfigsCmd(a),
		newRunCmd(a),
		newOutputsCmd(a),
		newScenariosCmd(a),
		newLiabilityCmd(a),
		newVersionCmd(),
	)

	return cmd
}

func moduleFlagUsage() string {
	names := make([]string, len(config.Modules))
	for i, m := range config.Modules {
		names[i] = string(m)
	}
	return "module (" + strings.Join(names, ", ") + ")"
}

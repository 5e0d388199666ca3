package main

import (
	"fmt"

	"github.com/Cyclone1070/palm/internal/fsutil"
	"github.com/Cyclone1070/palm/internal/launcher"
	"github.com/Cyclone1070/palm/internal/logging"
	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/Cyclone1070/palm/internal/workflow/pipeline"
	"github.com/spf13/cobra"
)

func newScenariosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Economic scenario generation",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "generate FILE",
		Short: "Save FILE as the next config_ESG_OTF_N.json and run the scenario generator on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := logging.FromContext(ctx)

			cfg, err := a.Config(ctx)
			if err != nil {
				return err
			}
			doc, _, err := readDocument(ctx, args[0])
			if err != nil {
				return err
			}

			events := make(chan workflow.Event, 8)
			runner := pipeline.NewRunner(cfg, launcher.New(cfg, logger), fsutil.NewOSFileSystem(), events, logger)

			var res *pipeline.GenerateResult
			done := make(chan error, 1)
			go func() {
				defer close(events)
				var err error
				res, err = runner.GenerateScenarios(ctx, doc)
				done <- err
			}()

			state := workflow.Collect(ctx, events)
			for range events {
			}
			err = <-done

			if res != nil && res.Script != nil {
				fmt.Fprint(cmd.OutOrStdout(), res.Script.Stdout)
			}
			if err != nil {
				return err
			}
			logger.Info("scenarios generated", "config", res.ConfigName, "stage", state.Stage)
			return nil
		},
	})

	return cmd
}

func newLiabilityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liability",
		Short: "Liability config generation",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "generate INPUT",
		Short: "Run the liability config script on INPUT from the UI directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())
			cfg, err := a.Config(cmd.Context())
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(cfg, launcher.New(cfg, logger), fsutil.NewOSFileSystem(), nil, logger)
			res, err := runner.GenerateLiabilityConfig(cmd.Context(), args[0])
			if res != nil {
				fmt.Fprint(cmd.OutOrStdout(), res.Stdout)
			}
			return err
		},
	})

	return cmd
}

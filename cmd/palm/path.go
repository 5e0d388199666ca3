package main

import (
	"fmt"

	"github.com/Cyclone1070/palm/internal/palmpath"
	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Path arithmetic used to locate configs, launchers and outputs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "normalize PATH...",
			Short: "Replace backslashes with forward slashes",
			Args:  cobra.MinimumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				for _, p := range args {
					fmt.Fprintln(cmd.OutOrStdout(), palmpath.Normalize(p))
				}
			},
		},
		&cobra.Command{
			Use:   "rel BASE FULL",
			Short: "Express FULL relative to BASE",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), palmpath.RelativePathFrom(args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "resolve BASE RELATIVE",
			Short: "Apply RELATIVE to BASE, dropping a trailing file name from BASE",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), palmpath.ResolvePath(args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "traverse BASE FILE",
			Short: "Folder of FILE relative to BASE, or null when there is none",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				rel, ok := palmpath.TraversalPathToFolder(args[0], args[1])
				if !ok {
					rel = "null"
				}
				fmt.Fprintln(cmd.OutOrStdout(), rel)
			},
		},
	)

	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Cyclone1070/palm/internal/config"
	"github.com/Cyclone1070/palm/internal/fsutil"
	"github.com/Cyclone1070/palm/internal/liability"
	"github.com/Cyclone1070/palm/internal/logging"
	"github.com/Cyclone1070/palm/internal/ui/views"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configs",
		Short: "List and inspect run configs",
	}
	cmd.AddCommand(newConfigsListCmd(a), newConfigsShowCmd())
	return cmd
}

func newConfigsListCmd(a *app) *cobra.Command {
	var module string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the run configs found under a module's config folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())
			cfg, err := a.Config(cmd.Context())
			if err != nil {
				return err
			}
			m, err := config.ParseModule(module)
			if err != nil {
				return err
			}
			dir, err := cfg.ConfigsDir(m)
			if err != nil {
				return err
			}

			entries, err := liability.Discover(fsutil.NewOSFileSystem(), dir)
			if err != nil {
				return err
			}
			logger.Debug("discovered configs", "dir", dir, "count", len(entries))

			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no configs under %s\n", dir)
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(views.TableBorderStyle).
				Headers("Name", "Run name", "Scenarios", "Time step", "Folder").
				StyleFunc(func(row, _ int) lipgloss.Style {
					if row == table.HeaderRow {
						return views.TableHeaderStyle
					}
					return views.TableCellStyle
				})
			for _, e := range entries {
				t.Row(e.Name, e.Summary.FileName, strconv.Itoa(e.Summary.TotalScenarios), strconv.Itoa(e.Summary.TimeStep), e.Dir)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&module, "module", "m", string(config.ModuleValuation), moduleFlagUsage())
	return cmd
}

func newConfigsShowCmd() *cobra.Command {
	var format string
	var keys bool

	cmd := &cobra.Command{
		Use:   "show PATH",
		Short: "Print a run config, given its folder or file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := readDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("read config", "path", path)

			if keys {
				for _, k := range doc.Keys() {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			}

			var out []byte
			switch format {
			case "json":
				out, err = liability.Encode(doc)
			case "yaml":
				out, err = yaml.Marshal(map[string]any(doc))
			default:
				return fmt.Errorf("unknown format %q, want json or yaml", format)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "json", "output format (json, yaml)")
	cmd.Flags().BoolVar(&keys, "keys", false, "list the top-level keys only")
	return cmd
}

// readDocument decodes path, or path/liability_config.json when path is a
// folder. Text left broken by a form editor (trailing commas, keys without a
// value) is repaired with CleanJSON when it does not decode as is.
func readDocument(ctx context.Context, path string) (liability.Document, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}
	if info.IsDir() {
		path = filepath.Join(path, liability.ConfigFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	doc, err := liability.DecodeBytes(data)
	if err == nil {
		return doc, path, nil
	}
	doc, cleanErr := liability.DecodeBytes([]byte(liability.CleanJSON(string(data))))
	if cleanErr != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	logging.FromContext(ctx).Warn("repaired malformed config", "path", path)
	return doc, path, nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Cyclone1070/palm/internal/artifact"
	"github.com/Cyclone1070/palm/internal/config"
	"github.com/Cyclone1070/palm/internal/fsutil"
	"github.com/Cyclone1070/palm/internal/logging"
	"github.com/Cyclone1070/palm/internal/outputs"
	"github.com/Cyclone1070/palm/internal/palmpath"
	"github.com/Cyclone1070/palm/internal/ui/views"
	"github.com/spf13/cobra"
)

type outputsOptions struct {
	module    string
	filter    string
	recursive bool
	rows      int
	latest    bool
	column    string
	yearly    bool
	every     int
}

func newOutputsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Inspect pALM output folders",
	}
	cmd.AddCommand(newOutputsShowCmd(a), newOutputsCheckCmd())
	return cmd
}

func newOutputsShowCmd(a *app) *cobra.Command {
	opts := &outputsOptions{}

	cmd := &cobra.Command{
		Use:   "show [DIR]",
		Short: "Show the CSV files of an output folder as tables",
		Long: `Shows the CSV files in DIR whose name contains the module's filter.
DIR defaults to palmOutputDataPath (palmSAAOutputDataPath for saa).
Paths listed in DIR/.palmignore are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.Config(cmd.Context())
			if err != nil {
				return err
			}
			module, err := config.ParseModule(opts.module)
			if err != nil {
				return err
			}

			view, _ := outputs.ModuleFilter(string(module))
			if cmd.Flags().Changed("filter") {
				view.Filter = opts.filter
			}
			if cmd.Flags().Changed("recursive") {
				view.Recursive = opts.recursive
			}

			dir := outputDir(cfg, module)
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				return fmt.Errorf("%w: output folder for %s", config.ErrMissingPath, module)
			}

			files, err := outputs.NewReader(fsutil.NewOSFileSystem(), logging.FromContext(cmd.Context())).ReadFiles(dir, view.Filter, view.Recursive)
			if err != nil {
				return err
			}
			if opts.latest {
				files = latestFile(files)
			}

			w := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintf(w, "no output files in %s match %q\n", dir, view.Filter)
				return nil
			}

			for _, f := range files {
				if opts.column == "" {
					fmt.Fprintln(w, views.RenderTable(f, opts.rows))
					continue
				}
				series, err := columnSeries(f, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, views.RenderTable(series, opts.rows))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.module, "module", "m", string(config.ModuleValuation), moduleFlagUsage())
	f.StringVar(&opts.filter, "filter", "", "only files whose name contains this (default: per module)")
	f.BoolVarP(&opts.recursive, "recursive", "r", false, "include subfolders")
	f.IntVar(&opts.rows, "rows", 20, "rows shown per file (0 for all)")
	f.BoolVar(&opts.latest, "latest", false, "only the file with the latest yyyymmdd stamp")
	f.StringVar(&opts.column, "column", "", "show only this column")
	f.BoolVar(&opts.yearly, "yearly", false, "sum --column into years of 12 monthly values")
	f.IntVar(&opts.every, "every", 1, "keep every Nth value of --column")

	return cmd
}

func newOutputsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check DIR",
		Short: "Report whether DIR holds a complete valuation output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := fsutil.NewOSFileSystem().ListNames(args[0])
			if err != nil {
				return err
			}
			if !outputs.IsValidOutputFolder(names) {
				return errors.New("not a complete output folder: income statement, detail output or balance sheet missing")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}

func outputDir(cfg *config.Config, module config.Module) string {
	if module == config.ModuleSAA {
		return palmpath.Normalize(cfg.PalmSAAOutputDataPath)
	}
	return palmpath.Normalize(cfg.PalmOutputDataPath)
}

func latestFile(files []outputs.CSVFile) []outputs.CSVFile {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	latest, ok := artifact.MostRecentDated(names)
	if !ok {
		return nil
	}
	for _, f := range files {
		if f.Name == latest {
			return []outputs.CSVFile{f}
		}
	}
	return nil
}

// columnSeries turns one column of f into a two column table of index and
// value, after the --yearly and --every reductions.
func columnSeries(f outputs.CSVFile, opts *outputsOptions) (outputs.CSVFile, error) {
	values, err := f.Column(opts.column)
	if err != nil {
		return outputs.CSVFile{}, err
	}

	label := "Row"
	if opts.yearly {
		values = outputs.GroupAndSumByYear(values)
		label = "Year"
	}
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i + 1
	}
	if opts.every > 1 {
		values = outputs.EveryNth(values, opts.every)
		idx = outputs.EveryNth(idx, opts.every)
	}

	data := [][]string{{label, opts.column}}
	for i, v := range values {
		data = append(data, []string{strconv.Itoa(idx[i]), strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return outputs.CSVFile{Path: f.Path, Name: f.Name + " · " + opts.column, Data: data}, nil
}

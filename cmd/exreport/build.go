package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exreport-go/pkg/exreport"
	"github.com/ukaji3/exreport-go/pkg/exreport/definition"
	"golang.org/x/sync/errgroup"
)

// errDuplicateOutput is returned when two reports would be saved to the same
// file.
var errDuplicateOutput = errors.New("duplicate output path")

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <definition>...",
		Short: "Render report definitions to .xlsx files",
		Long: `Render one or more report definitions. Each argument is a path to a
YAML definition or the name of a discoverable definition (see "exreport list").
Reports are built in parallel; the path of every saved workbook is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBuild,
	}

	cmd.Flags().StringP("output-dir", "o", ".", "Directory to write workbooks into")
	cmd.Flags().IntP("parallel", "p", runtime.NumCPU(), "Maximum number of reports built at once")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	dir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		return err
	}
	parallel, err := cmd.Flags().GetInt("parallel")
	if err != nil {
		return err
	}
	if parallel < 1 {
		return fmt.Errorf("invalid --parallel %d: must be at least 1", parallel)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("output directory %s does not exist", dir)
	}

	logger := setupLogger(cmd)

	// Resolve every definition before building anything.
	reports := make([]*definition.Report, len(args))
	for i, arg := range args {
		r, err := definition.Resolve(arg)
		if err != nil {
			return err
		}
		reports[i] = r
	}

	paths, err := buildReports(cmd.Context(), reports, dir, parallel, exreport.WithLogger(logger))
	for _, p := range paths {
		if p != "" {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	}
	return err
}

// buildReports renders reports concurrently, at most limit at a time. The
// returned paths are in input order; a failed report leaves its slot empty.
func buildReports(ctx context.Context, reports []*definition.Report, dir string, limit int, opts ...exreport.Option) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := checkOutputs(reports, dir); err != nil {
		return nil, err
	}
	paths := make([]string, len(reports))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, r := range reports {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := definition.Build(r, dir, opts...)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}

	return paths, g.Wait()
}

// checkOutputs rejects reports whose workbooks would land on the same path.
func checkOutputs(reports []*definition.Report, dir string) error {
	owners := make(map[string]string, len(reports))
	for _, r := range reports {
		path := filepath.Clean(filepath.Join(dir, r.Output))
		if prev, ok := owners[path]; ok {
			return fmt.Errorf("%w: reports %q and %q both write %s", errDuplicateOutput, prev, r.Name, path)
		}
		owners[path] = r.Name
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/setcover"
)

var (
	batchJobs      int
	batchFormat    string
	batchAlgo      string
	batchThreshold float64
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Solve several independent instances concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", 0, "number of parallel solves (default from config)")
	batchCmd.Flags().StringVar(&batchFormat, "format", string(instance.FormatText), "output format: text, json, yaml, toml, msgpack")
	batchCmd.Flags().StringVar(&batchAlgo, "algo", "", "algorithm: auto, exact or greedy (default from config)")
	batchCmd.Flags().Float64Var(&batchThreshold, "threshold", 0, "exact/greedy cut-off on m·2ⁿ (default from config)")
}

// batchResult is the outcome of one file; exactly one of Report and Err is set.
type batchResult struct {
	Path   string
	Report *instance.Report
	Err    error
}

func runBatch(cmd *cobra.Command, args []string) error {
	algo, opts, err := solverSettings(cmd, batchAlgo, batchThreshold)
	if err != nil {
		return err
	}
	format, err := instance.ParseFormat(batchFormat)
	if err != nil {
		return err
	}
	jobs := cfg.Batch.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = batchJobs
	}

	results, err := solveAll(cmd.Context(), args, jobs, algo, opts...)
	if err != nil {
		return err
	}

	return printBatch(cmd.OutOrStdout(), format, results)
}

// solveAll solves every path independently with at most jobs solves in
// flight. One file failing does not stop the others; results keep the order
// of paths.
func solveAll(ctx context.Context, paths []string, jobs int, algo setcover.Algorithm, opts ...setcover.Option) ([]batchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = 1
	}

	results := make([]batchResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// each index is written by one goroutine only
			report, err := solveFile(path, algo, opts...)
			results[i] = batchResult{Path: path, Report: report, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// printBatch writes one report per file and fails if any file failed.
func printBatch(w io.Writer, format instance.Format, results []batchResult) error {
	header := color.New(color.Bold)
	failed := 0
	for _, r := range results {
		if format == instance.FormatText {
			header.Fprintf(w, "== %s\n", r.Path)
		}
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "error: %v\n", r.Err)
			continue
		}
		if err := instance.Encode(w, format, r.Report); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d instance(s) failed", failed, len(results))
	}

	return nil
}

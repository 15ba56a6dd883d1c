package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/setcover/instance"
	"github.com/katalvlaran/setcover/setcover"
)

var (
	solveAlgo      string
	solveThreshold float64
	solveFormat    string
	solveOut       string
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "Solve one instance (yaml, toml, json, msgpack or a csv catalog)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveAlgo, "algo", "", "algorithm: auto, exact or greedy (default from config)")
	solveCmd.Flags().Float64Var(&solveThreshold, "threshold", 0, "exact/greedy cut-off on m·2ⁿ (default from config)")
	solveCmd.Flags().StringVar(&solveFormat, "format", string(instance.FormatText), "output format: text, json, yaml, toml, msgpack")
	solveCmd.Flags().StringVarP(&solveOut, "out", "o", "", "write the report to this file instead of stdout")
}

func runSolve(cmd *cobra.Command, args []string) error {
	algo, opts, err := solverSettings(cmd, solveAlgo, solveThreshold)
	if err != nil {
		return err
	}
	format, err := instance.ParseFormat(solveFormat)
	if err != nil {
		return err
	}

	report, err := solveFile(args[0], algo, opts...)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), solveOut, func(w io.Writer) error {
		return instance.Encode(w, format, report)
	})
}

// solverSettings merges the command's --algo/--threshold values over the
// config file. Flags left unset keep the configured values.
func solverSettings(cmd *cobra.Command, algoFlag string, thresholdFlag float64) (setcover.Algorithm, []setcover.Option, error) {
	name := cfg.Solver.Algorithm
	if cmd.Flags().Changed("algo") {
		name = algoFlag
	}
	algo, err := setcover.ParseAlgorithm(name)
	if err != nil {
		return setcover.Auto, nil, err
	}

	threshold := cfg.Solver.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = thresholdFlag
	}
	if !(threshold > 0) {
		return setcover.Auto, nil, errors.Errorf("threshold must be positive, got %g", threshold)
	}

	return algo, []setcover.Option{setcover.WithThreshold(threshold)}, nil
}

// solveFile loads path and solves it.
func solveFile(path string, algo setcover.Algorithm, opts ...setcover.Option) (*instance.Report, error) {
	in, err := instance.Load(path)
	if err != nil {
		return nil, err
	}
	report, err := instance.Solve(in, algo, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not solve %s", path)
	}
	log.WithField("path", path).WithField("algorithm", report.Algorithm).Debug("Solved")

	return report, nil
}

// writeOutput runs write against path, or against stdout when path is empty.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "could not close %s", path)
}

package main

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/setcover/builder"
	"github.com/katalvlaran/setcover/instance"
)

var (
	genUniverse  int
	genSets      int
	genDensity   float64
	genSeed      int64
	genCoverable bool
	genLabels    bool
	genSetNames  string
	genWeights   string
	genFormat    string
	genOut       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a seeded random instance",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&genUniverse, "universe", "n", 10, "number of elements")
	generateCmd.Flags().IntVarP(&genSets, "sets", "m", 8, "number of candidate sets")
	generateCmd.Flags().Float64Var(&genDensity, "density", 0.3, "probability that a set contains a given element")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "random seed")
	generateCmd.Flags().BoolVar(&genCoverable, "coverable", false, "guarantee that every element is in some set")
	generateCmd.Flags().BoolVar(&genLabels, "labels", false, "name elements CWE-<i>")
	generateCmd.Flags().StringVar(&genSetNames, "set-names", "symbol", "set naming: symbol (S0, S1, ...), excel (A, B, ..., AA) or index (0, 1, ...)")
	generateCmd.Flags().StringVar(&genWeights, "weights", "default", "set weights: default (integers 1..10), unit, const:X or uniform:A,B")
	generateCmd.Flags().StringVar(&genFormat, "format", string(instance.FormatYAML), "output format: yaml, toml, json, msgpack")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "write the instance to this file instead of stdout")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	format, err := instance.ParseFormat(genFormat)
	if err != nil {
		return err
	}

	nameFn, err := parseNameScheme(genSetNames)
	if err != nil {
		return err
	}
	weightFn, err := parseWeightFn(genWeights)
	if err != nil {
		return err
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(genSeed),
		builder.WithName("random"),
		builder.WithSetNameScheme(nameFn),
		builder.WithWeightFn(weightFn),
	}
	if genCoverable {
		opts = append(opts, builder.WithCoverable())
	}
	if genLabels {
		opts = append(opts, builder.WithLabelScheme(builder.WeaknessIDFn))
	}
	in, err := builder.Random(genUniverse, genSets, genDensity, opts...)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), genOut, func(w io.Writer) error {
		return instance.Encode(w, format, in)
	})
}

// parseNameScheme maps a --set-names value to a builder naming scheme.
func parseNameScheme(name string) (builder.IDFn, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "symbol":
		return builder.SymbolNumberIDFn("S"), nil
	case "excel":
		return builder.ExcelColumnIDFn, nil
	case "index":
		return builder.DefaultIDFn, nil
	}

	return nil, errors.Errorf("unknown set naming scheme %q (want symbol, excel or index)", name)
}

// parseWeightFn maps a --weights value to a builder weight distribution.
// Bounds are checked here so the builder constructors never panic.
func parseWeightFn(spec string) (builder.WeightFn, error) {
	kind, args, _ := strings.Cut(strings.TrimSpace(spec), ":")
	switch strings.ToLower(kind) {
	case "", "default":
		return builder.DefaultWeightFn, nil
	case "unit":
		return builder.UnitWeightFn, nil
	case "const":
		v, err := parseWeight(args)
		if err != nil {
			return nil, errors.Wrapf(err, "bad --weights %q", spec)
		}
		return builder.ConstantWeightFn(v), nil
	case "uniform":
		lo, hi, ok := strings.Cut(args, ",")
		if !ok {
			return nil, errors.Errorf("bad --weights %q: want uniform:MIN,MAX", spec)
		}
		a, err := parseWeight(lo)
		if err != nil {
			return nil, errors.Wrapf(err, "bad --weights %q", spec)
		}
		b, err := parseWeight(hi)
		if err != nil {
			return nil, errors.Wrapf(err, "bad --weights %q", spec)
		}
		if b < a {
			return nil, errors.Errorf("bad --weights %q: max %g is below min %g", spec, b, a)
		}
		return builder.UniformWeightFn(a, b), nil
	}

	return nil, errors.Errorf("unknown weight distribution %q (want default, unit, const:X or uniform:A,B)", spec)
}

// parseWeight reads one finite, non-negative weight.
func parseWeight(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("weight must be finite and non-negative, got %g", v)
	}

	return v, nil
}

// SPDX-License-Identifier: MIT

// Command omicsnet runs the sparse two-block integration on a pair of CSV
// tables, or on a generated demo pair, and prints the component network as
// a tab-separated edge list.
//
//	omicsnet [-config run.yaml] [-a rna.csv -b metab.csv] [-o edges.tsv]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/katalvlaran/omicsnet/frame"
	"github.com/katalvlaran/omicsnet/internal/config"
	"github.com/katalvlaran/omicsnet/internal/logging"
	"github.com/katalvlaran/omicsnet/pipeline"
	"github.com/katalvlaran/omicsnet/spls"
	"github.com/katalvlaran/omicsnet/synth"
)

func main() {
	_ = godotenv.Load()
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

// realMain parses args, runs the pipeline and returns the process exit code.
// Deferred cleanup (output file, logger sync) runs before main exits.
func realMain(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("omicsnet", flag.ContinueOnError)
	cfgPath := fs.String("config", "omicsnet.yaml", "Path to config YAML")
	inA := fs.String("a", "", "CSV for dataset A (overrides config)")
	inB := fs.String("b", "", "CSV for dataset B (overrides config)")
	outPath := fs.String("o", "", "write the edge list here instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Printf("environment: %v", err)
		return 1
	}
	if *inA != "" || *inB != "" {
		cfg.Inputs.A, cfg.Inputs.B = *inA, *inB
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("%v", err)
		return 1
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Printf("failed to build logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	out := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Error("create output", zap.Error(err))
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := run(cfg, logger, out); err != nil {
		logger.Error("run failed", zap.Error(err))
		return 1
	}
	return 0
}

// run loads or generates the two blocks, runs the pipeline and writes the edges.
func run(cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	a, b, err := inputs(cfg, logger)
	if err != nil {
		return err
	}

	p := pipeline.New(spls.NewCanonical(), pipeline.WithLogger(logger))
	res, err := p.Run(a, b, cfg.PipelineParams())
	if err != nil {
		return err
	}

	comp, err := res.Result.Component(cfg.Params.Component)
	if err != nil {
		return err
	}
	logger.Info("component summary",
		zap.Int("component", comp.Index),
		zap.Float64("correlation", comp.Correlation),
		zap.Float64("explained_a", comp.ExplainedVarianceA),
		zap.Float64("explained_b", comp.ExplainedVarianceB),
	)

	return writeEdges(out, res)
}

func inputs(cfg *config.Config, logger *zap.Logger) (*frame.Matrix, *frame.Matrix, error) {
	if cfg.Inputs.A != "" {
		a, err := readCSV(cfg.Inputs.A)
		if err != nil {
			return nil, nil, err
		}
		b, err := readCSV(cfg.Inputs.B)
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}

	s := cfg.Synthetic
	logger.Info("generating synthetic pair",
		zap.Int("samples", s.Samples),
		zap.Int("features_a", s.FeaturesA),
		zap.Int("features_b", s.FeaturesB),
		zap.Int("linked", s.Linked),
		zap.Int64("seed", s.Seed),
	)
	ds, err := synth.Generate(s.Samples, s.FeaturesA, s.FeaturesB, s.Linked, synth.WithSeed(s.Seed))
	if err != nil {
		return nil, nil, err
	}
	return ds.A, ds.B, nil
}

func readCSV(path string) (*frame.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := frame.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// writeEdges prints one edge per line: featureA, featureB, weight, sign.
func writeEdges(w io.Writer, res *pipeline.Output) error {
	if _, err := fmt.Fprintln(w, "feature_a\tfeature_b\tweight\tsign"); err != nil {
		return err
	}
	for _, e := range res.Edges.Edges() {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%.6g\t%s\n", e.FeatureA, e.FeatureB, e.Weight, e.Sign); err != nil {
			return err
		}
	}
	return nil
}

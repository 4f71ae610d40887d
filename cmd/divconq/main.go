// Command divconq generates datasets, runs the closest-pair and Karatsuba
// cores over them, and serves the JSON API.
//
//	divconq generate -dir datasets -seed 1
//	divconq run      -dir datasets -workers 1 [-out dir] [-v]
//	divconq serve    -addr :5000 -dir datasets
//	divconq closest  -file datasets/closest_pair_input_1.txt [-trace]
//	divconq multiply -file datasets/integer_mult_input_1.txt [-trace]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/divconq/closestpair"
	"github.com/katalvlaran/divconq/dataset"
	"github.com/katalvlaran/divconq/karatsuba"
	"github.com/katalvlaran/divconq/runner"
	"github.com/katalvlaran/divconq/server"
)

const usage = `usage: divconq <command> [flags]

commands:
  generate   write the standard dataset suite
  run        apply both algorithms to every dataset and write the results
  serve      serve the JSON API
  closest    closest pair of one points file
  multiply   Karatsuba product of one integers file
`

var errUsage = errors.New("bad usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "divconq: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}
	logger := log.New(stderr, "divconq: ", log.LstdFlags)

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "generate":
		return runGenerate(rest, stdout, stderr)
	case "run":
		return runBatch(ctx, rest, stdout, stderr, logger)
	case "serve":
		return runServe(ctx, rest, stderr, logger)
	case "closest":
		return runClosest(rest, stdout, stderr)
	case "multiply":
		return runMultiply(rest, stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", cmd, usage)
		return errUsage
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

func runGenerate(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("generate", stderr)
	dir := fs.String("dir", "datasets", "output directory")
	seed := fs.Int64("seed", 1, "generator seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths, err := dataset.WriteSuite(*dir, *seed)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(stdout, "Created: %s\n", p)
	}

	return nil
}

func runBatch(ctx context.Context, args []string, stdout, stderr io.Writer, logger *log.Logger) error {
	fs := newFlagSet("run", stderr)
	dir := fs.String("dir", "datasets", "dataset directory")
	out := fs.String("out", "", "results directory (default: the dataset directory)")
	workers := fs.Int("workers", 1, "datasets processed concurrently")
	verbose := fs.Bool("v", false, "log every dataset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		*out = *dir
	}

	opts := []runner.Option{runner.WithWorkers(*workers)}
	if *verbose {
		opts = append(opts, runner.WithLogger(logger))
	}
	rep, err := runner.Run(ctx, *dir, opts...)
	if err != nil {
		return err
	}
	paths, err := runner.WriteResults(*out, rep)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(stdout, "Results saved to: %s\n", p)
	}

	return runner.WriteSummary(stdout, rep)
}

func runServe(ctx context.Context, args []string, stderr io.Writer, logger *log.Logger) error {
	fs := newFlagSet("serve", stderr)
	addr := fs.String("addr", ":5000", "listen address")
	dir := fs.String("dir", "datasets", "directory for generated datasets")
	seed := fs.Int64("seed", 1, "default seed for generated datasets")
	maxUpload := fs.Int64("max-upload", server.DefaultMaxUploadBytes, "request body limit in bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	srv, err := server.New(
		server.WithDatasetDir(*dir),
		server.WithSeed(*seed),
		server.WithMaxUploadBytes(*maxUpload),
		server.WithLogger(logger))
	if err != nil {
		return err
	}
	err = srv.ListenAndServe(ctx, *addr)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func runClosest(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("closest", stderr)
	file := fs.String("file", "", "points file")
	trace := fs.Bool("trace", false, "print the recursion steps")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		fmt.Fprintln(stderr, "closest: need -file")
		return errUsage
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()
	pts, err := dataset.ReadPoints(f)
	if err != nil {
		return fmt.Errorf("%s: %w", *file, err)
	}

	var tr closestpair.Trace
	opts := []closestpair.Option{}
	if *trace {
		opts = append(opts, closestpair.WithTrace(&tr))
	}
	start := time.Now()
	res, err := closestpair.ClosestPair(pts, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Number of points: %d\n", len(pts))
	if res.Pair == nil {
		fmt.Fprintln(stdout, "Closest pair: none (fewer than 2 points)")
	} else {
		fmt.Fprintf(stdout, "Point 1: (%.6f, %.6f)\n", res.Pair.A.X, res.Pair.A.Y)
		fmt.Fprintf(stdout, "Point 2: (%.6f, %.6f)\n", res.Pair.B.X, res.Pair.B.Y)
		fmt.Fprintf(stdout, "Distance: %.6f\n", res.Distance)
	}
	fmt.Fprintf(stdout, "Execution time: %.4f ms\n", float64(elapsed.Nanoseconds())/1e6)
	for i, s := range tr.Steps {
		fmt.Fprintf(stdout, "step %3d depth %2d %s\n", i, s.Depth, s.Kind)
	}
	if tr.Truncated() {
		fmt.Fprintf(stdout, "... %d more steps\n", tr.Total-len(tr.Steps))
	}

	return nil
}

func runMultiply(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("multiply", stderr)
	file := fs.String("file", "", "integers file")
	trace := fs.Bool("trace", false, "print the recursion steps")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		fmt.Fprintln(stderr, "multiply: need -file")
		return errUsage
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()
	x, y, err := dataset.ReadIntegers(f)
	if err != nil {
		return fmt.Errorf("%s: %w", *file, err)
	}

	var tr karatsuba.Trace
	opts := []karatsuba.Option{}
	if *trace {
		opts = append(opts, karatsuba.WithTrace(&tr))
	}
	start := time.Now()
	z, err := karatsuba.MultiplySigned(x, y, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "First integer digits: %d\n", karatsuba.DigitCount(x))
	fmt.Fprintf(stdout, "Second integer digits: %d\n", karatsuba.DigitCount(y))
	fmt.Fprintf(stdout, "Result digits: %d\n", karatsuba.DigitCount(z))
	fmt.Fprintf(stdout, "Result: %s\n", z)
	verdict := "FAILED"
	if karatsuba.Verify(x, y, z) {
		verdict = "PASSED"
	}
	fmt.Fprintf(stdout, "Verification: %s\n", verdict)
	fmt.Fprintf(stdout, "Execution time: %.4f ms\n", float64(elapsed.Nanoseconds())/1e6)
	for i, s := range tr.Steps {
		fmt.Fprintf(stdout, "step %3d depth %2d %-9s %s\n", i, s.Depth, s.Kind, s.Result)
	}
	if tr.Truncated() {
		fmt.Fprintf(stdout, "... %d more steps\n", tr.Total-len(tr.Steps))
	}

	return nil
}

package runner

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Output file names written by WriteResults.
const (
	PointsResultsFile   = "closest_pair_results.txt"
	ProductsResultsFile = "integer_mult_results.txt"
	ReportJSONFile      = "report.json"
	PerformanceCSVFile  = "performance.csv"
)

// digitsShown is how many leading and trailing product digits the text report
// keeps; products up to twice that length are printed whole.
const digitsShown = 100

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

// WriteResults writes the text, JSON and CSV renderings of rep into dir and
// returns the paths written.
func WriteResults(dir string, rep Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{PointsResultsFile, func(w io.Writer) error { return writePointsText(w, rep.ClosestPair) }},
		{ProductsResultsFile, func(w io.Writer) error { return writeProductsText(w, rep.Karatsuba) }},
		{ReportJSONFile, func(w io.Writer) error { return writeJSON(w, rep) }},
		{PerformanceCSVFile, func(w io.Writer) error { return writeCSV(w, rep) }},
	}

	paths := make([]string, 0, len(outputs))
	for _, o := range outputs {
		path := filepath.Join(dir, o.name)
		if err := writeFile(path, o.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return fmt.Errorf("runner: write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("runner: write %s: %w", path, err)
	}

	return f.Close()
}

// errWriter keeps the first write error so the text layouts read straight.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func writePointsText(w io.Writer, rs []PointsResult) error {
	ew := &errWriter{w: w}
	ew.printf("CLOSEST PAIR OF POINTS - RESULTS\n%s\n\n", heavyRule)
	for _, r := range rs {
		ew.printf("Dataset: %s\n", r.Dataset)
		switch {
		case r.Err != "":
			ew.printf("Error: %s\n", r.Err)
		case r.A == nil:
			ew.printf("Number of points: %d\n", r.NumPoints)
			ew.printf("Closest pair: none (fewer than 2 points)\n")
		default:
			ew.printf("Number of points: %d\n", r.NumPoints)
			ew.printf("Closest pair:\n")
			ew.printf("  Point 1: (%.6f, %.6f)\n", r.A.X, r.A.Y)
			ew.printf("  Point 2: (%.6f, %.6f)\n", r.B.X, r.B.Y)
			ew.printf("Distance: %.6f\n", r.Distance)
			ew.printf("Execution time: %.4f ms\n", r.ElapsedMS)
		}
		ew.printf("%s\n\n", lightRule)
	}

	return ew.err
}

func writeProductsText(w io.Writer, rs []ProductResult) error {
	ew := &errWriter{w: w}
	ew.printf("KARATSUBA INTEGER MULTIPLICATION - RESULTS\n%s\n\n", heavyRule)
	for _, r := range rs {
		ew.printf("Dataset: %s\n", r.Dataset)
		if r.Err != "" {
			ew.printf("Error: %s\n%s\n\n", r.Err, lightRule)
			continue
		}
		ew.printf("First integer digits: %d\n", r.XDigits)
		ew.printf("Second integer digits: %d\n", r.YDigits)
		ew.printf("Result digits: %d\n", r.ResultDigits)
		if p := r.Product; len(p) <= 2*digitsShown {
			ew.printf("Result: %s\n", p)
		} else {
			ew.printf("First %d digits of result: %s...\n", digitsShown, p[:digitsShown])
			ew.printf("Last %d digits of result: ...%s\n", digitsShown, p[len(p)-digitsShown:])
		}
		ew.printf("Verification: %s\n", passed(r.Verified))
		ew.printf("Execution time: %.4f ms\n", r.ElapsedMS)
		ew.printf("%s\n\n", lightRule)
	}

	return ew.err
}

func writeJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// writeCSV emits one row per dataset: problem, dataset, size, elapsed, status.
func writeCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"Problem", "Dataset", "Size", "ElapsedMs", "Status"})
	for _, r := range rep.ClosestPair {
		cw.Write([]string{"closest_pair", r.Dataset, fmt.Sprintf("%d", r.NumPoints),
			fmt.Sprintf("%.4f", r.ElapsedMS), status(r.Err, true)})
	}
	for _, r := range rep.Karatsuba {
		cw.Write([]string{"karatsuba", r.Dataset, fmt.Sprintf("%d", r.XDigits),
			fmt.Sprintf("%.4f", r.ElapsedMS), status(r.Err, r.Verified)})
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary prints the performance analysis of rep.
func WriteSummary(w io.Writer, rep Report) error {
	ew := &errWriter{w: w}
	ew.printf("%s\nPERFORMANCE ANALYSIS (run %s)\n%s\n", heavyRule, rep.RunID, heavyRule)

	ps := rep.PointsSum
	ew.printf("\n--- CLOSEST PAIR OF POINTS ---\n")
	ew.printf("Total datasets processed: %d (failed: %d)\n", ps.Datasets, ps.Failed)
	if ps.Datasets > ps.Failed {
		ew.printf("Point set sizes: %d to %d\n", ps.MinSize, ps.MaxSize)
		ew.printf("Average execution time: %.4f ms\n", ps.AvgMS)
		ew.printf("Min execution time: %.4f ms\n", ps.MinMS)
		ew.printf("Max execution time: %.4f ms\n", ps.MaxMS)
	}

	ks := rep.ProductsSum
	ew.printf("\n--- KARATSUBA MULTIPLICATION ---\n")
	ew.printf("Total datasets processed: %d (failed: %d)\n", ks.Datasets, ks.Failed)
	if ks.Datasets > ks.Failed {
		ew.printf("Integer sizes: %d to %d digits\n", ks.MinSize, ks.MaxSize)
		ew.printf("Average execution time: %.4f ms\n", ks.AvgMS)
		ew.printf("Min execution time: %.4f ms\n", ks.MinMS)
		ew.printf("Max execution time: %.4f ms\n", ks.MaxMS)
		ew.printf("All verifications: %s\n", passed(ks.AllVerified))
	}

	return ew.err
}

func passed(ok bool) string {
	if ok {
		return "PASSED"
	}

	return "FAILED"
}

func status(errMsg string, ok bool) string {
	if errMsg != "" {
		return "ERROR"
	}

	return passed(ok)
}

package runner

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	pointsPrefix   = "closest_pair_input_"
	integersPrefix = "integer_mult_input_"
	inputSuffix    = ".txt"
)

// Kind names the problem a dataset file feeds.
type Kind string

// Dataset kinds.
const (
	KindClosestPair Kind = "closest_pair"
	KindKaratsuba   Kind = "karatsuba"
)

// File describes one dataset file of a directory.
type File struct {
	Name    string    `json:"name"`
	Kind    Kind      `json:"type"`
	Number  int       `json:"number"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`
}

// DatasetKind reports the kind of a bare dataset file name. Only
// "closest_pair_input_<i>.txt" and "integer_mult_input_<i>.txt" with a
// decimal i match, so a matching name never carries a path separator.
func DatasetKind(name string) (Kind, int, bool) {
	if n, ok := datasetNumber(name, pointsPrefix); ok {
		return KindClosestPair, n, true
	}
	if n, ok := datasetNumber(name, integersPrefix); ok {
		return KindKaratsuba, n, true
	}

	return "", 0, false
}

// List returns the dataset files of dir, closest-pair sets first, each kind
// ordered by its numeric suffix. Other entries are ignored.
func List(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	var files []File
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		kind, n, ok := DatasetKind(e.Name())
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("runner: %w", err)
		}
		files = append(files, File{
			Name:    e.Name(),
			Kind:    kind,
			Number:  n,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	slices.SortFunc(files, func(a, b File) int {
		if a.Kind != b.Kind {
			if a.Kind == KindClosestPair {
				return -1
			}
			return 1
		}

		return cmp.Compare(a.Number, b.Number)
	})

	return files, nil
}

// discover splits the dataset files of dir by kind.
func discover(dir string) (points, integers []string, err error) {
	files, err := List(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range files {
		if f.Kind == KindClosestPair {
			points = append(points, f.Name)
		} else {
			integers = append(integers, f.Name)
		}
	}

	return points, integers, nil
}

// datasetNumber extracts i from "<prefix><i>.txt"; i must be plain decimal digits.
func datasetNumber(name, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return 0, false
	}
	digits, ok := strings.CutSuffix(rest, inputSuffix)
	if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}

	return n, true
}

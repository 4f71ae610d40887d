package runner

import (
	"time"

	"github.com/golang/geo/r2"
	"github.com/google/uuid"

	"github.com/katalvlaran/divconq/closestpair"
	"github.com/katalvlaran/divconq/karatsuba"
)

// PointsResult is the outcome of one closest-pair dataset.
// A and B are nil when the set has fewer than two points or failed to parse.
type PointsResult struct {
	Dataset   string             `json:"dataset"`
	NumPoints int                `json:"num_points"`
	A         *closestpair.Point `json:"a,omitempty"`
	B         *closestpair.Point `json:"b,omitempty"`
	Distance  float64            `json:"distance"`
	Bounds    r2.Rect            `json:"bounds"`
	Stats     closestpair.Stats  `json:"stats"`
	ElapsedMS float64            `json:"elapsed_ms"`
	Err       string             `json:"error,omitempty"`
}

// ProductResult is the outcome of one Karatsuba dataset. Product is the
// decimal product; it can run to thousands of digits.
type ProductResult struct {
	Dataset      string          `json:"dataset"`
	XDigits      int             `json:"x_digits"`
	YDigits      int             `json:"y_digits"`
	ResultDigits int             `json:"result_digits"`
	Product      string          `json:"product,omitempty"`
	Verified     bool            `json:"verified"`
	Stats        karatsuba.Stats `json:"stats"`
	ElapsedMS    float64         `json:"elapsed_ms"`
	Err          string          `json:"error,omitempty"`
}

// Summary aggregates the successful datasets of one problem.
// Size is the point count or the first operand's digit count.
type Summary struct {
	Datasets    int     `json:"datasets"`
	Failed      int     `json:"failed"`
	MinSize     int     `json:"min_size"`
	MaxSize     int     `json:"max_size"`
	AvgMS       float64 `json:"avg_ms"`
	MinMS       float64 `json:"min_ms"`
	MaxMS       float64 `json:"max_ms"`
	AllVerified bool    `json:"all_verified"`
}

// Report is everything one Run produced.
type Report struct {
	RunID       uuid.UUID       `json:"run_id"`
	Dir         string          `json:"dir"`
	Started     time.Time       `json:"started"`
	ClosestPair []PointsResult  `json:"closest_pair"`
	Karatsuba   []ProductResult `json:"karatsuba"`
	PointsSum   Summary         `json:"closest_pair_summary"`
	ProductsSum Summary         `json:"karatsuba_summary"`
}

// sample is one successful timing with its size.
type sample struct {
	size int
	ms   float64
}

func summarize(samples []sample, failed int) Summary {
	s := Summary{Datasets: len(samples) + failed, Failed: failed}
	if len(samples) == 0 {
		return s
	}
	s.MinSize, s.MaxSize = samples[0].size, samples[0].size
	s.MinMS, s.MaxMS = samples[0].ms, samples[0].ms
	var sum float64
	for _, x := range samples {
		s.MinSize = min(s.MinSize, x.size)
		s.MaxSize = max(s.MaxSize, x.size)
		s.MinMS = min(s.MinMS, x.ms)
		s.MaxMS = max(s.MaxMS, x.ms)
		sum += x.ms
	}
	s.AvgMS = sum / float64(len(samples))

	return s
}

func summarizePoints(rs []PointsResult) Summary {
	var samples []sample
	failed := 0
	for _, r := range rs {
		if r.Err != "" {
			failed++
			continue
		}
		samples = append(samples, sample{size: r.NumPoints, ms: r.ElapsedMS})
	}

	return summarize(samples, failed)
}

func summarizeProducts(rs []ProductResult) Summary {
	var samples []sample
	failed := 0
	verified := true
	for _, r := range rs {
		if r.Err != "" {
			failed++
			continue
		}
		samples = append(samples, sample{size: r.XDigits, ms: r.ElapsedMS})
		verified = verified && r.Verified
	}
	s := summarize(samples, failed)
	s.AllVerified = verified && len(samples) > 0

	return s
}

package closestpair

// StepKind labels an entry of a Trace.
type StepKind string

// Step kinds, in the order they typically appear.
const (
	StepStart   StepKind = "start"   // Count = number of input points
	StepCompare StepKind = "compare" // base-case comparison of A and B
	StepDivide  StepKind = "divide"  // split at Midpoint into LeftSize/RightSize
	StepStrip   StepKind = "strip"   // StripSize points within Width/2 of the split line
	StepResult  StepKind = "result"  // final A, B, Distance
)

// DefaultTraceLimit is the number of steps kept when Trace.Limit is 0.
const DefaultTraceLimit = 100

// Step is one recorded event of the recursion. Only the fields relevant to
// Kind are set; pointer fields are nil when absent, so a zero distance still
// marshals.
type Step struct {
	Kind      StepKind `json:"type"`
	Depth     int      `json:"depth"`
	Count     int      `json:"num_points,omitempty"`
	A         *Point   `json:"a,omitempty"`
	B         *Point   `json:"b,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Midpoint  *Point   `json:"midpoint,omitempty"`
	LeftSize  int      `json:"left_size,omitempty"`
	RightSize int      `json:"right_size,omitempty"`
	StripSize int      `json:"strip_size,omitempty"`
	Width     *float64 `json:"width,omitempty"`
}

// Trace accumulates the steps of one ClosestPair call.
//
// Limit caps len(Steps) (0 ⇒ DefaultTraceLimit, negative ⇒ keep none);
// Total counts every step, kept or not. A Trace is owned by a single call
// and must not be shared between concurrent calls.
type Trace struct {
	Limit int
	Steps []Step
	Total int
}

func (t *Trace) record(s Step) {
	if t == nil {
		return
	}
	t.Total++
	limit := t.Limit
	if limit == 0 {
		limit = DefaultTraceLimit
	}
	if len(t.Steps) < limit {
		t.Steps = append(t.Steps, s)
	}
}

// Truncated reports whether some steps were counted but not kept.
func (t *Trace) Truncated() bool {
	return t != nil && t.Total > len(t.Steps)
}

func pointRef(p Point) *Point { return &p }

func floatRef(f float64) *float64 { return &f }

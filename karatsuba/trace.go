package karatsuba

// StepKind labels an entry of a Trace.
type StepKind string

// Step kinds.
const (
	StepBaseCase StepKind = "base_case" // X·Y computed directly
	StepSplit    StepKind = "split"     // X, Y split at SplitPos digits
	StepCombine  StepKind = "combine"   // Result assembled from z0, z1, z2
)

// DefaultTraceLimit is the number of steps kept when Trace.Limit is 0.
const DefaultTraceLimit = 100

// Step is one recorded event. Integers are kept as decimal strings so a
// trace can be serialized without losing digits.
type Step struct {
	Kind     StepKind `json:"type"`
	Depth    int      `json:"depth"`
	X        string   `json:"x,omitempty"`
	Y        string   `json:"y,omitempty"`
	SplitPos int      `json:"split_pos,omitempty"`
	Result   string   `json:"result,omitempty"`
}

// Trace accumulates the steps of one Multiply call.
//
// Limit caps len(Steps) (0 ⇒ DefaultTraceLimit, negative ⇒ keep none);
// Total counts every step. Steps are recorded in call order: a split, the
// subtrees of z0, z1 and z2, then the matching combine.
type Trace struct {
	Limit int
	Steps []Step
	Total int
}

// add counts a step and builds it only when it will be kept, so dropped
// steps never pay for decimal conversion.
func (t *Trace) add(build func() Step) {
	if t == nil {
		return
	}
	t.Total++
	limit := t.Limit
	if limit == 0 {
		limit = DefaultTraceLimit
	}
	if len(t.Steps) < limit {
		t.Steps = append(t.Steps, build())
	}
}

// Truncated reports whether some steps were counted but not kept.
func (t *Trace) Truncated() bool {
	return t != nil && t.Total > len(t.Steps)
}

// Package divconq collects two classic divide-and-conquer algorithms and the
// tooling to exercise them on real datasets.
//
// 🚀 What is divconq?
//
//	A small, dependency-light module with:
//		• closestpair: closest pair of points in O(n log n)
//		• karatsuba:   exact big-integer multiplication in O(n^1.585)
//		• dataset:     deterministic generators + strict text codecs
//		• runner:      batch application, verification and reports
//		• server:      JSON-over-HTTP endpoints for both algorithms
//
// ✨ Why it looks the way it does
//
//   - The cores are pure functions: no globals, no logging, no panics on input.
//   - Step traces are explicit accumulators passed through options, capped
//     at 100 kept steps while still counting every step.
//   - Every randomized component is seeded, so tests and datasets reproduce.
//
// Layout:
//
//	closestpair/ — Point, ClosestPair, BruteForce, Trace
//	karatsuba/   — Multiply, MultiplySigned, DigitCount, Verify, Trace, Stats
//	dataset/     — GeneratePoints, GenerateIntegers, Suite, Read*/Write*
//	runner/      — Run, Report, WriteResults, WriteSummary
//	server/      — New, Handler, ListenAndServe
//	cmd/divconq/ — the command-line entry point
//
//	go install github.com/katalvlaran/divconq/cmd/divconq@latest
package divconq

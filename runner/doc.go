// Package runner applies the closest-pair and Karatsuba cores to a directory
// of dataset files and reports what happened.
//
// 🚀 What is it?
//
//	Run discovers closest_pair_input_<i>.txt and integer_mult_input_<i>.txt
//	(ordered by i), parses each file, times the core call alone, checks every
//	product against math/big, and returns a Report. WriteResults renders the
//	report as the two human-readable result files plus report.json and
//	performance.csv.
//
// ✨ Behaviour
//
//   - A file that fails to parse is recorded with its error; the batch goes on.
//   - WithWorkers(n) processes up to n datasets at once (errgroup). The
//     default of 1 keeps timings free of contention.
//   - Cancelling ctx stops the batch between datasets.
//   - Every Report carries a RunID (UUID) so result files can be correlated.
package runner

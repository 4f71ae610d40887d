// Package dataset generates and serializes the input files consumed by the
// closest-pair and Karatsuba runners.
//
// 🚀 What is it?
//
//	A deterministic generator for random point sets and large integer pairs,
//	plus a strict line-oriented codec for the two text formats:
//
//	  points:    first line n, then n lines "x y"    (written with %.6f)
//	  integers:  two lines, one decimal integer each (optional leading '-')
//
// ✨ Key features
//
//   - Functional options (WithSeed, WithRand, WithCoordRange, WithDigitRange);
//     option constructors panic on meaningless values, generators never do.
//   - StandardSuite / WriteSuite reproduce the ten-plus-ten benchmark files
//     (closest_pair_input_<i>.txt, integer_mult_input_<i>.txt); each file is
//     drawn from its own derived RNG stream, so one file never shifts another.
//   - Malformed input fails with *InputFormatError, which carries the 1-based
//     line number and matches ErrInputFormat via errors.Is.
//
// ⚙️ Usage
//
//	pts, _ := dataset.GeneratePoints(500, dataset.WithSeed(7))
//	_ = dataset.WritePoints(w, pts)
//	back, err := dataset.ReadPoints(r)
package dataset

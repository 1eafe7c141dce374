// Package builder generates deterministic labeled sparse frames for tests,
// benchmarks, examples and the lvframe CLI.
//
// The package offers:
//
//   - RandomCSR: an r×c matrix where every cell is non-zero with probability
//     p, sampled in row-major order.
//   - RandomFrame: RandomCSR wrapped into a *frame.Frame[string] with labels
//     produced by ID schemes.
//   - ID schemes (IDFn): DefaultIDFn ("0","1",...), ExcelColumnIDFn
//     ("A".."Z","AA",...), PrefixIDFn ("r0","r1",...).
//   - Value generators (ValueFn): ConstantValueFn, UniformValueFn, DigitValueFn.
//   - Options: WithSeed / WithRand (randomness), WithRowIDs / WithColIDs,
//     WithRowOffset / WithColOffset (shifted label ranges, for building
//     overlapping frames), WithValueFn, WithFrameOptions.
//
// Guarantees:
//
//   - Same seed and options ⇒ identical output (fixed trial order: i asc, j asc).
//   - Option constructors panic on meaningless input; builders return
//     sentinel errors (ErrBadSize, ErrInvalidProbability, ErrNeedRandSource).
package builder

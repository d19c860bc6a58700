// Package field defines the scalar fields sampled by the grid engine.
//
// What:
//
//   - Field is a pure function of two spatial coordinates and time.
//   - Func adapts a plain Go function to Field.
//   - Wave, Ripple and Constant are ready-made fields; Lookup resolves
//     them by name for command-line tools.
//
// Contract:
//
//   - Evaluate must be side-effect free and deterministic for identical
//     arguments. The grid engine calls it once per lattice point per
//     resample, so it should be cheap.
package field

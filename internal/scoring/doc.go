// Package scoring implements the dual-layer accuracy computation that
// compares detected markers against reference annotations.
//
// The input is three sequences produced by the extraction package: reference
// rectangles from the ground-truth image, and candidate rectangles plus
// candidate points from the detection image. Candidate points are a weaker
// signal than candidate rectangles: a point says "something was detected
// here" without a matched region.
//
// # Pipeline
//
// Scoring runs in four stages:
//
//  1. Partition: reference rectangles that contain only candidate points and
//     no candidate rectangle center are treated as noise-only and excluded
//     from all further scoring.
//  2. Area fractions: each surviving reference rectangle gets Z1, its area
//     as a fraction of the total surviving reference area. Candidate
//     rectangles get Z2 against the total candidate area.
//  3. First layer: paired Z1/Z2 entries are compared with the symmetric
//     relative-similarity score P = 1 - |Z1-Z2| / max(Z1, Z2), one value in
//     [0, 1] per pair.
//  4. Second layer: per surviving reference rectangle, the fraction of
//     contained markers that are candidate rectangle centers (as opposed to
//     bare points), averaged uniformly across the rectangles that contain
//     anything at all.
//
// # Degenerate inputs
//
// Empty or zero-area inputs are not errors. A zero total area yields an
// empty fraction sequence, rectangles containing no markers contribute
// nothing to the second layer, and an empty surviving reference set scores
// 0.0. No function in this package panics on empty input.
//
// # Purity
//
// Score never mutates its inputs and returns a fresh Result per call, so
// independent scoring runs may execute concurrently without synchronization.
package scoring

// Package bfield implements the vectorized field-evaluation pipeline.
//
// The pipeline reconciles three independent degrees of freedom — per-object
// path length, per-source geometry kind, and per-observer pixel grid — into
// one dense batched computation:
//
//   - path alignment: every participating object gets an aligned path
//     snapshot of common length m, padded with its final state
//   - observation assembly: all observer pixel grids are flattened into one
//     dense array of global observation points
//   - grouping: sources are partitioned by geometry [Kind] and each bucket
//     is evaluated with a single call into the closed-form kernels
//   - reassembly: bucket outputs are scattered back into input order,
//     group entries are superposed, observer rotations are undone, and the
//     result is reshaped into the canonical (L0, m, K, pixel..., 3) tensor
//
// Units follow the usual conventions for analytic magnet models: lengths in
// mm, magnetization (polarization) in mT, currents in A, moments in mT·mm³.
// [FieldB] yields B in mT, [FieldH] yields H in kA/m.
//
// Evaluation never mutates caller-owned objects: alignment works on local
// snapshots, so Evaluate is reentrant and safe to call concurrently on
// shared sources and observers.
package bfield

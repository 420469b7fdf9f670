// SPDX-License-Identifier: MIT

// Package scene samples the decorative particle field behind the cheat sheet
// and wires it to the proximity builder.
//
// A Scene has two layers:
//
//   - Particles: a large cloud of coloured points (default 200 in a
//     20×20×10 box, palette indigo/purple/cyan).
//   - Network: a small set of nodes (default 30 in a 15×15×5 box) joined by
//     proximity edges below a threshold (default 3), flattened into a line
//     buffer for rendering.
//
// Sampling is deterministic for a given seed: every coordinate is drawn as
// (r − 0.5)·extent in x, y, z order from one *rand.Rand. Build requires an
// explicit source (WithSeed or WithRand) and returns ErrNeedRandSource
// otherwise; nothing reads the clock or a global generator.
package scene

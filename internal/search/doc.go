// Package search finds the cheapest action sequence that takes a searcher
// from a grid's start cell, facing right, to its goal cell.
//
// The searchable state is a (cell, heading) pair. Moving one cell forward and
// rotating 90° in place have different weights (1 and 1000 by default), so the
// engine runs a uniform-cost search: a min-heap frontier ordered by
// accumulated cost, a visited set that closes states when they are popped, and
// an expander that prunes action sequences which can never be optimal.
//
// It exposes two entry points:
//
//   - Run: drive the search to completion and get a Result.
//   - Stepper: pop one frontier entry per call, for visualisers and debugging.
//
// The package performs no I/O. Diagnostics are available through an Observer
// that is called once per pop.
package search

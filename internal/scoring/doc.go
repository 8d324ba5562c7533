// Package scoring holds the shared risk-scoring primitives used by every
// analyzer in crowdrisk.
//
// Analyzers express their formulas as a base value plus an ordered list of
// weighted Adjustments, then map the clamped score onto a qualitative Level
// through a descending list of Boundaries. Recommendation text is assembled
// the same way from ordered Rules, so output order never depends on the shape
// of the branching code that evaluates them.
package scoring

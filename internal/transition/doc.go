// Package transition implements the land degradation recoding engine: it
// validates transition matrices that assign a degradation meaning to every
// (initial class, final class) pair of a classification legend, recodes
// observed transitions through a validated matrix, and combines per-dimension
// recode results into a single aggregate indicator under a configurable
// precedence order.
//
// Matrices are immutable once validated, so all lookups are safe for
// concurrent use.
package transition

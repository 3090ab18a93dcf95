// Package codec converts the reporting graph to and from its portable
// document form: a nested map/array/scalar tree ready for JSON transport.
//
// The codec owns everything wire-specific that the core model deliberately
// avoids: the "Report_<n>" / "Report_<n>_status" period key convention, the
// fixed timestamp format, and version-conditional decoding of the two
// supported legacy document shapes. Validation failures carry the dotted
// field path where they occurred.
package codec

// Package classification defines the land cover, productivity, and soil
// organic carbon class legends used throughout Trends.Earth analyses, and a
// process-wide registry mapping each classification dimension to its legend.
//
// A Legend is an ordered set of classes plus a reserved no-data class. Legends
// are immutable once constructed and the registry is read-only after process
// start, so everything in this package is safe for concurrent readers.
package classification

// Package reporting defines the versioned report graph exchanged between the
// Trends.Earth computation backend, the QGIS plugin, and the UNCCD PRAIS
// reporting system: summary area and population tables, per-period land
// condition and affected population reports, drought tier reports, and the
// top-level summary documents that own them.
//
// Reporting periods are held as an ordered, index-based sequence; the
// "Report_<n>" string keys used on the wire are generated and parsed only by
// the codec package. All types are plain data: construct, seal, then treat as
// read-only.
package reporting

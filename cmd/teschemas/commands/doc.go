// Package commands defines the teschemas CLI.
//
// Commands
//
//   - validate   Check a report document against the data contract
//   - convert    Re-encode a report document in the current or legacy format
//   - legends    Print or export the built-in classification legends
//
// # Implementation
//
// Subcommands operate on JSON documents produced by Trends.Earth; any of the
// supported historical format versions is accepted as input. Conversion
// always emits a sealed, validated document.
package commands

package codec

import (
	"strconv"
	"strings"
)

// FormatVersion enumerates the document shapes this codec can decode.
type FormatVersion int

// Supported document formats, oldest first.
const (
	// FormatV1 is the original flat shape: a single land condition report
	// and affected population table, no period keys. Produced by 1.x
	// releases.
	FormatV1 FormatVersion = iota + 1

	// FormatV2 is the fixed two-period shape with "baseline" and
	// "reporting" keys. Produced by 2.0.x releases.
	FormatV2

	// FormatCurrent is the dynamic period-keyed shape with
	// "Report_<n>[_status]" keys. Produced by 2.1 and later.
	FormatCurrent
)

// String returns a short name for the format.
func (v FormatVersion) String() string {
	switch v {
	case FormatV1:
		return "v1"
	case FormatV2:
		return "v2"
	case FormatCurrent:
		return "current"
	}
	return "unknown"
}

// DetectVersion maps a metadata version string onto the format table.
// Versions outside the three documented shapes fail with
// UnsupportedVersionError rather than guessing.
func DetectVersion(version string) (FormatVersion, error) {
	major, minor, ok := parseVersion(version)
	if !ok {
		return 0, &UnsupportedVersionError{Version: version}
	}
	switch {
	case major == 1:
		return FormatV1, nil
	case major == 2 && minor == 0:
		return FormatV2, nil
	case major == 2 && minor >= 1:
		return FormatCurrent, nil
	}
	return 0, &UnsupportedVersionError{Version: version}
}

// parseVersion extracts the numeric major and minor components of a semantic
// version string, tolerating a trailing pre-release or build suffix.
func parseVersion(version string) (major, minor int, ok bool) {
	version, _, _ = strings.Cut(version, "-")
	version, _, _ = strings.Cut(version, "+")
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return 0, 0, false
	}
	return major, minor, true
}

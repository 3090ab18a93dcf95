package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVersion(t *testing.T) {
	cases := []struct {
		version string
		want    FormatVersion
	}{
		{"1.0.4", FormatV1},
		{"1.99", FormatV1},
		{"2.0", FormatV2},
		{"2.0.10", FormatV2},
		{"2.1.0", FormatCurrent},
		{"2.1.16", FormatCurrent},
		{"2.9.3", FormatCurrent},
		{"2.1.16-beta1", FormatCurrent},
	}
	for _, tc := range cases {
		got, err := DetectVersion(tc.version)
		require.NoError(t, err, "version %s", tc.version)
		assert.Equal(t, tc.want, got, "version %s", tc.version)
	}
}

func TestDetectVersionUnsupported(t *testing.T) {
	for _, bad := range []string{"0.9", "3.0.0", "10.1", "2", "two.one", "", "2.x"} {
		_, err := DetectVersion(bad)
		var unsupported *UnsupportedVersionError
		require.ErrorAs(t, err, &unsupported, "version %q", bad)
		assert.Equal(t, bad, unsupported.Version)
	}
}

func TestFormatVersionString(t *testing.T) {
	assert.Equal(t, "v1", FormatV1.String())
	assert.Equal(t, "v2", FormatV2.String())
	assert.Equal(t, "current", FormatCurrent.String())
	assert.Equal(t, "unknown", FormatVersion(0).String())
}

package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tgt, err := ParseTarget("legacy")
	require.NoError(t, err)
	assert.Equal(t, TargetLegacy, tgt)

	tgt, err = ParseTarget("current")
	require.NoError(t, err)
	assert.Equal(t, TargetCurrent, tgt)

	// Empty selects the current format.
	tgt, err = ParseTarget("")
	require.NoError(t, err)
	assert.Equal(t, TargetCurrent, tgt)

	_, err = ParseTarget("xml")
	assert.True(t, errors.Is(err, ErrUnknownTarget))
}

func TestConvertTargetIsValid(t *testing.T) {
	assert.True(t, TargetCurrent.IsValid())
	assert.True(t, TargetLegacy.IsValid())
	assert.False(t, ConvertTarget("").IsValid())
	assert.False(t, ConvertTarget("xml").IsValid())
}

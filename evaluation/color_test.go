package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorsEqual_AlphaIgnored(t *testing.T) {
	assert.True(t, ColorsEqual("FFFF0000", "00FF0000"))
	assert.True(t, ColorsEqual("FF0000", "FFFF0000"))
	assert.True(t, ColorsEqual("123456", "FF123456"))
	assert.False(t, ColorsEqual("FFFF0000", "FF00FF00"))
}

func TestColorsEqual_AbsentDefaults(t *testing.T) {
	assert.True(t, ColorsEqual("", ""))
	assert.True(t, ColorsEqual("", "00000000"))
	assert.True(t, ColorsEqual("", "FF000000"))
	assert.False(t, ColorsEqual("", "FFFFFFFF"))
}

func TestColorsEqual_CaseSensitive(t *testing.T) {
	assert.False(t, ColorsEqual("ff0000", "FF0000"))
}

func TestRGBOrDefault(t *testing.T) {
	assert.Equal(t, "00000000", rgbOrDefault(""))
	assert.Equal(t, "FF123456", rgbOrDefault("FF123456"))
}

package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *parsed)
}

func TestParseDateEmptyMeansAbsent(t *testing.T) {
	parsed, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, input := range []string{"01-03-2024", "2024/03/01", "yesterday", "2024-13-40"} {
		parsed, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
		assert.Nil(t, parsed)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 6, 30, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-06-30", FormatDate(&d))
	assert.Equal(t, "", FormatDate(nil))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Minute, ParseDuration("30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
}

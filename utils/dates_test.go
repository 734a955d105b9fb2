package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateOnlyStripsTime(t *testing.T) {
	ts := time.Date(2024, 3, 5, 17, 45, 12, 999, time.FixedZone("x", 3600))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 4, Nights(day(1), day(5)))
	assert.Equal(t, 1, Nights(day(1), day(2)))
	assert.Equal(t, 0, Nights(day(5), day(5)))
	assert.Equal(t, -3, Nights(day(5), day(2)))
}

package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
	assert.True(t, IsValid("UTC"))
}

func TestLocation_FallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.NotNil(t, Location("Mars/Olympus"))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	got, err := StartOfDay("2026-03-01", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 22, 0, 0, 0, time.UTC), got.UTC())

	_, err = StartOfDay("01/03/2026", loc)
	assert.Error(t, err)
}

package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestParseDateTimeAndClock(t *testing.T) {
	at, err := ParseDateTime("Asia/Kuala_Lumpur", "2026-11-02", "14:30")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 11, 2, 6, 30, 0, 0, time.UTC), at.UTC())
	assert.Equal(t, "14:30", ClockOf("Asia/Kuala_Lumpur", at.UTC()))

	_, err = ParseDateTime("Asia/Kuala_Lumpur", "2026-11-02", "25:00")
	assert.Error(t, err)
}

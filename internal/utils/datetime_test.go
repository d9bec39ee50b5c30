package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	parsed, err := ParseSchedule("31/12/2025 18:30")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 12, 31, 18, 30, 0, 0, time.Local), parsed)
}

func TestParseScheduleRejectsOtherFormats(t *testing.T) {
	for _, value := range []string{
		"",
		"2025-12-31",
		"2025-12-31 18:30",
		"31/12/2025",
		"12/31/2025 18:30",
		"31/12/25 18:30",
	} {
		_, err := ParseSchedule(value)
		require.Error(t, err, "value %q", value)
	}
}

package formatters

import (
	"fmt"
	"math"
)

// Timestamp renders a second count as HH:MM:SS.mmm. The input is rounded to
// whole milliseconds before decomposition so binary float artifacts never
// reach the output (0.1+0.2 renders as "00:00:00.300"). Hours widen past two
// digits when the input exceeds 100 hours. Negative input clamps to zero.
func Timestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int64(math.Round(seconds * 1000))

	hours := total / 3600000
	minutes := (total % 3600000) / 60000
	secs := (total % 60000) / 1000
	millis := total % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}

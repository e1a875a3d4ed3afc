package transcript

import (
	"fmt"
	"math"
	"strings"

	"github.com/voyagen/telescribe/internal/models"
)

// FullText joins fragment texts with single spaces in document order.
func FullText(fragments []models.TranscriptFragment) string {
	parts := make([]string, len(fragments))
	for i, f := range fragments {
		parts[i] = f.Text
	}
	return strings.Join(parts, " ")
}

// FormatSRT renders fragments as numbered SubRip blocks. Cue numbers start
// at 1 and every block ends with a blank line, including the last.
func FormatSRT(fragments []models.TranscriptFragment) string {
	var b strings.Builder
	for i, f := range fragments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			FormatTimestamp(f.StartTime),
			FormatTimestamp(f.StartTime+f.Duration),
			f.Text)
	}
	return b.String()
}

// FormatTimestamp converts seconds to the SubRip HH:MM:SS,mmm form.
// Milliseconds are truncated, not rounded; the hours field keeps its
// two-digit padding but widens past 99.
func FormatTimestamp(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Mod(seconds, 60))
	millis := int(math.Mod(seconds, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

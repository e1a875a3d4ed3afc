package models

// TranscriptFragment is a single timed caption line. StartTime and Duration
// are seconds as reported by the timedtext payload.
type TranscriptFragment struct {
	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`
	Text      string  `json:"text"`
}

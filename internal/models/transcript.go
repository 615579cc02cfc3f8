package models

// Segment is one timed unit of transcript text. Start and Duration are in
// seconds, as reported by the caption source.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptResult is a successful acquisition: the ordered segments plus
// their space-joined text. Segments is never nil; an empty transcript is a
// valid result.
type TranscriptResult struct {
	VideoID  string
	Language string
	Text     string
	Segments []Segment
}

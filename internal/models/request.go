package models

// TranscriptRequest is the POST /transcript body. Unknown fields are ignored.
type TranscriptRequest struct {
	VideoID  string `json:"video_id"`
	Language string `json:"language"`
}

// SimpleTranscriptResponse carries the combined transcript text only.
// Transcript is a pointer so a failed lookup serializes as JSON null.
type SimpleTranscriptResponse struct {
	Success       bool    `json:"success"`
	VideoID       string  `json:"videoId"`
	Transcript    *string `json:"transcript"`
	HasTranscript bool    `json:"hasTranscript"`
}

// DetailedTranscriptResponse adds the raw timed segments.
type DetailedTranscriptResponse struct {
	Success    bool      `json:"success"`
	VideoID    string    `json:"videoId"`
	Transcript *string   `json:"transcript"`
	Raw        []Segment `json:"raw"`
	Language   string    `json:"language"`
}

// TimestampedSegment pairs segment timing with HH:MM:SS.mmm renderings.
type TimestampedSegment struct {
	Text           string  `json:"text"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	StartFormatted string  `json:"startFormatted"`
	EndFormatted   string  `json:"endFormatted"`
}

type TimestampedTranscriptResponse struct {
	Success  bool                 `json:"success"`
	VideoID  string               `json:"videoId"`
	Segments []TimestampedSegment `json:"segments"`
	Language string               `json:"language"`
}

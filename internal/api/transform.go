package api

import (
	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/formatters"
	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/models"
)

// NewSimpleResponse shapes an acquisition outcome into the simple form.
// A nil result is the uniform failure shape.
func NewSimpleResponse(videoID string, result *models.TranscriptResult) models.SimpleTranscriptResponse {
	if result == nil {
		return models.SimpleTranscriptResponse{VideoID: videoID}
	}

	text := result.Text
	return models.SimpleTranscriptResponse{
		Success:       true,
		VideoID:       videoID,
		Transcript:    &text,
		HasTranscript: true,
	}
}

// NewDetailedResponse shapes an acquisition outcome into the detailed form.
// Language echoes the requested code either way.
func NewDetailedResponse(videoID string, language string, result *models.TranscriptResult) models.DetailedTranscriptResponse {
	response := models.DetailedTranscriptResponse{
		VideoID:  videoID,
		Language: language,
	}
	if result == nil {
		return response
	}

	text := result.Text
	response.Success = true
	response.Transcript = &text
	response.Raw = result.Segments
	return response
}

// NewTimestampedResponse shapes an acquisition outcome into the timestamped
// form, deriving end = start + duration per segment.
func NewTimestampedResponse(videoID string, language string, result *models.TranscriptResult) models.TimestampedTranscriptResponse {
	response := models.TimestampedTranscriptResponse{
		VideoID:  videoID,
		Language: language,
	}
	if result == nil {
		return response
	}

	segments := make([]models.TimestampedSegment, 0, len(result.Segments))
	for _, segment := range result.Segments {
		end := segment.Start + segment.Duration
		segments = append(segments, models.TimestampedSegment{
			Text:           segment.Text,
			Start:          segment.Start,
			End:            end,
			StartFormatted: formatters.Timestamp(segment.Start),
			EndFormatted:   formatters.Timestamp(end),
		})
	}

	response.Success = true
	response.Segments = segments
	return response
}

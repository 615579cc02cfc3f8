package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	yt_models "github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"

	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/models"
	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/service/fixtures"
)

func TestNewTranscriptService(t *testing.T) {
	client := &fixtures.MockTranscriptClient{}
	svc := NewTranscriptService(client)
	assert.NotNil(t, svc, "Service should not be nil")
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name            string
		videoID         string
		language        string
		mockTranscripts []yt_models.Transcript
		mockError       error
		expectedError   error
		expectedResult  *models.TranscriptResult
	}{
		{
			name:     "Success case - segments joined with spaces",
			videoID:  "dQw4w9WgXcQ",
			language: "en",
			mockTranscripts: []yt_models.Transcript{
				{
					VideoID:      "dQw4w9WgXcQ",
					LanguageCode: "en",
					Lines: []yt_models.TranscriptLine{
						{Text: "Hello", Start: 0, Duration: 1.5},
						{Text: "", Start: 1.5, Duration: 1.0},
						{Text: "world", Start: 2.5, Duration: 2.0},
					},
				},
			},
			expectedResult: &models.TranscriptResult{
				VideoID:  "dQw4w9WgXcQ",
				Language: "en",
				Text:     "Hello  world",
				Segments: []models.Segment{
					{Text: "Hello", Start: 0, Duration: 1.5},
					{Text: "", Start: 1.5, Duration: 1.0},
					{Text: "world", Start: 2.5, Duration: 2.0},
				},
			},
		},
		{
			name:     "Empty transcript is a valid success",
			videoID:  "dQw4w9WgXcQ",
			language: "en",
			mockTranscripts: []yt_models.Transcript{
				{VideoID: "dQw4w9WgXcQ", LanguageCode: "en"},
			},
			expectedResult: &models.TranscriptResult{
				VideoID:  "dQw4w9WgXcQ",
				Language: "en",
				Text:     "",
				Segments: []models.Segment{},
			},
		},
		{
			name:            "No transcripts returned",
			videoID:         "dQw4w9WgXcQ",
			language:        "en",
			mockTranscripts: []yt_models.Transcript{},
			expectedError:   ErrNoTranscript,
		},
		{
			name:          "Video unavailable",
			videoID:       "dQw4w9WgXcQ",
			language:      "en",
			mockError:     errors.New("failed to extract list of transcripts: VideoUnavailable"),
			expectedError: ErrVideoUnavailable,
		},
		{
			name:          "Captions missing entirely",
			videoID:       "dQw4w9WgXcQ",
			language:      "en",
			mockError:     errors.New("failed to extract list of transcripts: NoTranscriptData"),
			expectedError: ErrTranscriptsDisabled,
		},
		{
			name:          "Language not available",
			videoID:       "dQw4w9WgXcQ",
			language:      "fr",
			mockError:     errors.New("failed to get transcript: no transcript found for languages [fr]"),
			expectedError: ErrNoTranscript,
		},
		{
			name:          "Unexpected upstream error is swallowed",
			videoID:       "dQw4w9WgXcQ",
			language:      "en",
			mockError:     errors.New("connection reset by peer"),
			expectedError: ErrUnknown,
		},
		{
			name:          "Rate limiting is an unknown failure",
			videoID:       "dQw4w9WgXcQ",
			language:      "en",
			mockError:     errors.New("failed to extract list of transcripts: TooManyRequests"),
			expectedError: ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fixtures.MockTranscriptClient{}
			client.On("GetTranscripts", tt.videoID, []string{tt.language}).
				Return(tt.mockTranscripts, tt.mockError)

			svc := NewTranscriptService(client)
			result, err := svc.Fetch(context.Background(), tt.videoID, tt.language)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}

			client.AssertExpectations(t)
		})
	}
}

func TestFetchMalformedVideoID(t *testing.T) {
	tests := []struct {
		name    string
		videoID string
	}{
		{name: "Empty", videoID: ""},
		{name: "Too short", videoID: "abc"},
		{name: "Too long", videoID: "dQw4w9WgXcQdQw4w9WgXcQ"},
		{name: "Illegal characters", videoID: "dQw4w9WgXc!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fixtures.MockTranscriptClient{}
			svc := NewTranscriptService(client)

			result, err := svc.Fetch(context.Background(), tt.videoID, "en")

			assert.ErrorIs(t, err, ErrInvalidVideoID)
			assert.Nil(t, result)
			client.AssertNotCalled(t, "GetTranscripts", mock.Anything, mock.Anything)
		})
	}
}

func TestFetchContextCancelled(t *testing.T) {
	client := &fixtures.MockTranscriptClient{}
	client.On("GetTranscripts", "dQw4w9WgXcQ", []string{"en"}).
		Run(func(args mock.Arguments) { time.Sleep(200 * time.Millisecond) }).
		Return([]yt_models.Transcript{}, nil)

	svc := NewTranscriptService(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Fetch(ctx, "dQw4w9WgXcQ", "en")

	assert.ErrorIs(t, err, ErrUnknown)
	assert.Nil(t, result)
}

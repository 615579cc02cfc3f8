package fixtures

import (
	"github.com/stretchr/testify/mock"

	yt_models "github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
)

// MockTranscriptClient implements service.TranscriptClient for testing
type MockTranscriptClient struct {
	mock.Mock
}

func (m *MockTranscriptClient) GetTranscripts(videoID string, languages []string) ([]yt_models.Transcript, error) {
	args := m.Called(videoID, languages)
	return args.Get(0).([]yt_models.Transcript), args.Error(1)
}

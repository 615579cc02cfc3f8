package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	yt_errors "github.com/horiagug/youtube-transcript-api-go/pkg/errors"
	yt_client "github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	yt_models "github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"

	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/models"
)

// TranscriptClient is the slice of the upstream client this service consumes.
type TranscriptClient interface {
	GetTranscripts(videoID string, languages []string) ([]yt_models.Transcript, error)
}

type TranscriptService interface {
	Fetch(ctx context.Context, videoID string, language string) (*models.TranscriptResult, error)
}

type transcriptService struct {
	client TranscriptClient
}

var videoIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

func NewTranscriptService(client TranscriptClient) *transcriptService {
	return &transcriptService{
		client: client,
	}
}

// HTMLFetcherType mirrors the upstream client's fetcher interface, which the
// library declares in an internal package and therefore cannot be imported.
type HTMLFetcherType interface {
	Fetch(url string, cookie *http.Cookie) ([]byte, error)
	FetchVideo(videoID string) ([]byte, error)
}

// NewClient builds the upstream transcript client over the given fetcher.
func NewClient(fetcher HTMLFetcherType) *yt_client.YtTranscriptClient {
	return yt_client.NewClient(yt_client.WithCustomFetcher(fetcher))
}

type fetchResult struct {
	transcripts []yt_models.Transcript
	err         error
}

// Fetch retrieves the ordered segment sequence for one video/language pair.
// Every failure mode comes back as a TranscriptError; nothing from the
// upstream call escapes as a server fault.
func (s *transcriptService) Fetch(ctx context.Context, videoID string, language string) (*models.TranscriptResult, error) {
	if !videoIDRegex.MatchString(videoID) {
		log.Printf("[WARN] rejected malformed video ID %q", videoID)
		return nil, ErrInvalidVideoID
	}

	resultChan := make(chan fetchResult, 1)
	go func() {
		transcripts, err := s.client.GetTranscripts(videoID, []string{language})
		resultChan <- fetchResult{transcripts: transcripts, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[WARN] transcript fetch abandoned for video %s: %v", videoID, ctx.Err())
		return nil, ErrUnknown
	case result := <-resultChan:
		if result.err != nil {
			log.Printf("[WARN] could not fetch transcript for video %s: %v", videoID, result.err)
			return nil, classify(result.err)
		}
		if len(result.transcripts) == 0 {
			log.Printf("[WARN] no transcript returned for video %s", videoID)
			return nil, ErrNoTranscript
		}
		return buildResult(videoID, language, result.transcripts[0]), nil
	}
}

// classify maps the upstream error surface onto this service's failure kinds.
// The client reports discovery failures as wrapped sentinel strings, so the
// mapping matches message fragments as well as the exported constants.
func classify(err error) TranscriptError {
	switch {
	case errors.Is(err, yt_errors.ErrInvalidVideoID):
		return ErrInvalidVideoID
	case errors.Is(err, yt_errors.ErrNoTranscript):
		return ErrNoTranscript
	}

	message := err.Error()
	switch {
	case strings.Contains(message, "VideoUnavailable"):
		return ErrVideoUnavailable
	case strings.Contains(message, "NoTranscriptData"):
		return ErrTranscriptsDisabled
	case strings.Contains(message, "no transcript found"):
		return ErrNoTranscript
	default:
		return ErrUnknown
	}
}

func buildResult(videoID string, language string, transcript yt_models.Transcript) *models.TranscriptResult {
	segments := make([]models.Segment, 0, len(transcript.Lines))
	texts := make([]string, 0, len(transcript.Lines))

	for _, line := range transcript.Lines {
		segments = append(segments, models.Segment{
			Text:     line.Text,
			Start:    line.Start,
			Duration: line.Duration,
		})
		texts = append(texts, line.Text)
	}

	// A single space between every segment, empty ones included. An empty
	// segment therefore shows up as a double space in the joined text.
	return &models.TranscriptResult{
		VideoID:  videoID,
		Language: language,
		Text:     strings.Join(texts, " "),
		Segments: segments,
	}
}

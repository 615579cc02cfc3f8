package service

type TranscriptError string

func (e TranscriptError) Error() string {
	return string(e)
}

const (
	ErrTranscriptsDisabled = TranscriptError("transcripts are disabled for this video")
	ErrNoTranscript        = TranscriptError("no transcript found for the requested language")
	ErrVideoUnavailable    = TranscriptError("video is unavailable")
	ErrInvalidVideoID      = TranscriptError("invalid video ID")
	ErrUnknown             = TranscriptError("could not fetch transcript")
)

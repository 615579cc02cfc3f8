package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/models"
	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/service"
)

const defaultLanguage = "en"

type Handler struct {
	transcripts service.TranscriptService
}

func NewHandler(transcripts service.TranscriptService) *Handler {
	return &Handler{transcripts: transcripts}
}

// Routes registers every endpoint on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /{$}", h.Info)
	mux.HandleFunc("GET /transcript/{video_id}", h.SimpleTranscript)
	mux.HandleFunc("POST /transcript", h.DetailedTranscript)
	mux.HandleFunc("GET /transcript/{video_id}/timestamps", h.TimestampedTranscript)
	return mux
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "YouTube Transcript Service",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":                 "/health",
			"simple_transcript":      "/transcript/{video_id}?lang=en",
			"detailed_transcript":    "/transcript (POST)",
			"timestamped_transcript": "/transcript/{video_id}/timestamps?lang=en",
		},
	})
}

// SimpleTranscript handles GET /transcript/{video_id}.
func (h *Handler) SimpleTranscript(w http.ResponseWriter, r *http.Request) {
	videoID := r.PathValue("video_id")
	language := langParam(r)

	result, err := h.transcripts.Fetch(r.Context(), videoID, language)
	if err != nil {
		writeJSON(w, http.StatusNotFound, NewSimpleResponse(videoID, nil))
		return
	}

	writeJSON(w, http.StatusOK, NewSimpleResponse(videoID, result))
}

// DetailedTranscript handles POST /transcript. Invalid input is rejected
// before any acquisition is attempted.
func (h *Handler) DetailedTranscript(w http.ResponseWriter, r *http.Request) {
	var request models.TranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if request.VideoID == "" {
		http.Error(w, "video_id is required", http.StatusBadRequest)
		return
	}

	language := request.Language
	if language == "" {
		language = defaultLanguage
	}

	result, err := h.transcripts.Fetch(r.Context(), request.VideoID, language)
	if err != nil {
		writeJSON(w, http.StatusNotFound, NewDetailedResponse(request.VideoID, language, nil))
		return
	}

	writeJSON(w, http.StatusOK, NewDetailedResponse(request.VideoID, language, result))
}

// TimestampedTranscript handles GET /transcript/{video_id}/timestamps.
func (h *Handler) TimestampedTranscript(w http.ResponseWriter, r *http.Request) {
	videoID := r.PathValue("video_id")
	language := langParam(r)

	result, err := h.transcripts.Fetch(r.Context(), videoID, language)
	if err != nil {
		writeJSON(w, http.StatusNotFound, NewTimestampedResponse(videoID, language, nil))
		return
	}

	writeJSON(w, http.StatusOK, NewTimestampedResponse(videoID, language, result))
}

func langParam(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return defaultLanguage
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[WARN] failed to encode response: %v", err)
	}
}

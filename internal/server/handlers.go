package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/voyagen/telescribe/api"
	"github.com/voyagen/telescribe/internal/fetcher"
	"github.com/voyagen/telescribe/internal/iptv"
	"github.com/voyagen/telescribe/internal/models"
	"github.com/voyagen/telescribe/internal/transcript"
)

// --- envelopes ---

type transcriptEnvelope struct {
	Success       bool                        `json:"success"`
	VideoID       string                      `json:"videoId"`
	Language      string                      `json:"language"`
	FragmentCount int                         `json:"fragmentCount"`
	Transcript    []models.TranscriptFragment `json:"transcript"`
}

type fullTextEnvelope struct {
	Success  bool   `json:"success"`
	VideoID  string `json:"videoId"`
	Language string `json:"language"`
	FullText string `json:"full_text"`
}

type srtEnvelope struct {
	Success  bool   `json:"success"`
	VideoID  string `json:"videoId"`
	Language string `json:"language"`
	Format   string `json:"format"`
	Content  string `json:"content"`
}

// transcriptError is the error envelope for the transcript endpoints.
type transcriptError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type tvEnvelope struct {
	StatusCode   int         `json:"status_code"`
	Message      string      `json:"message"`
	Search       string      `json:"search"`
	TotalResults int         `json:"total_results"`
	Showing      int         `json:"showing"`
	Channels     []tvChannel `json:"channels"`
}

// tvChannel is a dataset channel plus the joined stream fields. The stream
// fields are pointers so they disappear entirely when the join is disabled
// yet still render 0 and [] for a match without streams.
type tvChannel struct {
	models.Channel
	StreamsCount *int        `json:"streams_count,omitempty"`
	Streams      *[]tvStream `json:"streams,omitempty"`
}

type tvStream struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Quality   string `json:"quality"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
}

// tvError is the error envelope for /tv. StatusCode mirrors the HTTP status
// of the response carrying it.
type tvError struct {
	StatusCode      int    `json:"status_code"`
	Message         string `json:"message"`
	Developer       string `json:"developer"`
	TelegramChannel string `json:"telegram_channel"`
}

// --- error mapping ---

// statusFor translates pipeline errors into HTTP status codes: bad input
// and unusable upstream content map to 400, upstream failures to 502,
// exceeded deadlines to 504, everything else to 500.
func statusFor(err error) int {
	var transportErr *fetcher.TransportError
	if errors.As(err, &transportErr) {
		if transportErr.Timeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	var upstreamErr *fetcher.UpstreamError
	if errors.As(err, &upstreamErr) {
		return http.StatusBadGateway
	}
	var extractionErr *transcript.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, transcript.ErrNoCaptions),
		errors.Is(err, transcript.ErrEmptyTranscript),
		errors.Is(err, iptv.ErrEmptySearch):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeTranscriptErr(w http.ResponseWriter, status int, message string) {
	if status >= 500 {
		log.Printf("ERROR %d: %s", status, message)
	}
	writeJSON(w, status, transcriptError{Success: false, Error: message})
}

func (s *Server) writeTVErr(w http.ResponseWriter, status int, message string) {
	if status >= 500 {
		log.Printf("ERROR %d: %s", status, message)
	}
	writeJSON(w, status, tvError{
		StatusCode:      status,
		Message:         message,
		Developer:       s.cfg.Developer,
		TelegramChannel: s.cfg.TelegramChannel,
	})
}

// --- meta handlers ---

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "Telescribe API",
		"version":     s.version,
		"description": "YouTube transcript extraction and TV channel search",
		"endpoints": map[string]string{
			"/transcript":           "Structured transcript with timing metadata",
			"/transcript/full-text": "Transcript as one plain-text string",
			"/transcript/srt":       "Transcript as a SubRip document",
			"/tv":                   "TV channel search with stream links",
			"/health":               "Liveness check",
			"/docs":                 "Interactive API documentation",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "service is running",
	})
}

// --- transcript handlers ---

// fetchTranscript validates the query parameters and runs the pipeline,
// writing the error response itself when anything fails.
func (s *Server) fetchTranscript(w http.ResponseWriter, r *http.Request) (*transcript.Transcript, bool) {
	videoID := r.URL.Query().Get("video_id")
	if strings.TrimSpace(videoID) == "" {
		writeTranscriptErr(w, http.StatusBadRequest, "video_id parameter is required")
		return nil, false
	}
	language := r.URL.Query().Get("language")
	if language == "" {
		language = s.cfg.DefaultLanguage
	}

	tr, err := s.transcripts.Fetch(r.Context(), videoID, language)
	if err != nil {
		writeTranscriptErr(w, statusFor(err), err.Error())
		return nil, false
	}
	return tr, true
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	tr, ok := s.fetchTranscript(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, transcriptEnvelope{
		Success:       true,
		VideoID:       tr.VideoID,
		Language:      tr.Language,
		FragmentCount: len(tr.Fragments),
		Transcript:    tr.Fragments,
	})
}

func (s *Server) handleTranscriptText(w http.ResponseWriter, r *http.Request) {
	tr, ok := s.fetchTranscript(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, fullTextEnvelope{
		Success:  true,
		VideoID:  tr.VideoID,
		Language: tr.Language,
		FullText: transcript.FullText(tr.Fragments),
	})
}

func (s *Server) handleTranscriptSRT(w http.ResponseWriter, r *http.Request) {
	tr, ok := s.fetchTranscript(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, srtEnvelope{
		Success:  true,
		VideoID:  tr.VideoID,
		Language: tr.Language,
		Format:   "srt",
		Content:  transcript.FormatSRT(tr.Fragments),
	})
}

// --- tv handler ---

func (s *Server) handleTV(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")
	result, err := s.channels.Search(r.Context(), query)
	if err != nil {
		s.writeTVErr(w, statusFor(err), err.Error())
		return
	}
	if result.TotalResults == 0 {
		s.writeTVErr(w, http.StatusBadRequest, fmt.Sprintf("no channels found matching %q", query))
		return
	}

	withStreams := s.channels.IncludeStreams()
	channels := make([]tvChannel, 0, len(result.Channels))
	for _, m := range result.Channels {
		ch := tvChannel{Channel: m.Channel}
		if withStreams {
			count := m.StreamsCount
			streams := make([]tvStream, 0, len(m.Streams))
			for _, st := range m.Streams {
				streams = append(streams, tvStream{
					URL:       st.URL,
					Title:     st.Title,
					Quality:   st.Quality,
					Referrer:  st.Referrer,
					UserAgent: st.UserAgent,
				})
			}
			ch.StreamsCount = &count
			ch.Streams = &streams
		}
		channels = append(channels, ch)
	}

	writeJSON(w, http.StatusOK, tvEnvelope{
		StatusCode:   http.StatusOK,
		Message:      "channels fetched successfully",
		Search:       result.Query,
		TotalResults: result.TotalResults,
		Showing:      len(channels),
		Channels:     channels,
	})
}

// --- docs handlers ---

func handleOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(api.OpenAPISpec)
}

func handleSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, swaggerUIHTML)
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Telescribe API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>html{box-sizing:border-box;overflow-y:scroll}*,*:before,*:after{box-sizing:inherit}body{margin:0;background:#fafafa}</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/docs/openapi.yaml",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

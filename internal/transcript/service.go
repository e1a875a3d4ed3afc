package transcript

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voyagen/telescribe/internal/fetcher"
	"github.com/voyagen/telescribe/internal/models"
)

// Service runs the transcript pipeline: scrape the watch page for the API
// key, ask the player endpoint for caption tracks, fetch the selected
// track's document and parse it into fragments.
type Service struct {
	fetcher   *fetcher.Client
	extractor KeyExtractor
	watchURL  string
	playerURL string
}

// NewService wires a pipeline against the given endpoints. watchURL and
// playerURL are the endpoint bases without query parameters.
func NewService(f *fetcher.Client, extractor KeyExtractor, watchURL, playerURL string) *Service {
	return &Service{
		fetcher:   f,
		extractor: extractor,
		watchURL:  watchURL,
		playerURL: playerURL,
	}
}

// Transcript is a fetched transcript with the language that was actually
// served, which may differ from the one requested.
type Transcript struct {
	VideoID   string
	Language  string
	Fragments []models.TranscriptFragment
}

// Fetch retrieves the transcript for videoID, preferring the caption track
// whose language code equals language.
func (s *Service) Fetch(ctx context.Context, videoID, language string) (*Transcript, error) {
	key, err := s.apiKey(ctx, videoID)
	if err != nil {
		return nil, err
	}

	player, err := fetchPlayer(ctx, s.fetcher, s.playerURL, key, videoID)
	if err != nil {
		return nil, err
	}
	tracks := player.tracks()
	if len(tracks) == 0 {
		if reason := player.PlayabilityStatus.Reason; reason != "" {
			return nil, fmt.Errorf("%w: %s", ErrNoCaptions, reason)
		}
		return nil, ErrNoCaptions
	}

	track := selectTrack(tracks, language)
	fragments, err := s.captions(ctx, stripFormatParam(track.BaseURL))
	if err != nil {
		return nil, err
	}

	// Report the track's own code; fall back to the requested language when
	// the player omitted it.
	resolved := track.LanguageCode
	if resolved == "" {
		resolved = language
	}
	return &Transcript{VideoID: videoID, Language: resolved, Fragments: fragments}, nil
}

// apiKey scrapes the Innertube API key from the video's watch page.
func (s *Service) apiKey(ctx context.Context, videoID string) (string, error) {
	pageURL := s.watchURL + "?v=" + url.QueryEscape(videoID)
	body, status, err := s.fetcher.Get(ctx, pageURL)
	if err != nil {
		return "", err
	}
	if !fetcher.IsSuccess(status) {
		return "", &fetcher.UpstreamError{URL: pageURL, StatusCode: status}
	}
	return s.extractor.ExtractKey(body)
}

// captions fetches and parses the caption document at captionURL.
func (s *Service) captions(ctx context.Context, captionURL string) ([]models.TranscriptFragment, error) {
	body, status, err := s.fetcher.Get(ctx, captionURL)
	if err != nil {
		return nil, err
	}
	if !fetcher.IsSuccess(status) {
		return nil, &fetcher.UpstreamError{URL: captionURL, StatusCode: status}
	}
	return ParseCaptions(body)
}

package transcript

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/voyagen/telescribe/internal/fetcher"
	"github.com/voyagen/telescribe/internal/models"
)

// The Android client is served caption metadata without the signature
// ciphering applied to web clients.
const (
	androidClientName    = "ANDROID"
	androidClientVersion = "20.10.38"
)

type playerRequest struct {
	Context playerContext `json:"context"`
	VideoID string        `json:"videoId"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
}

// playerResponse carries only the slices of the player payload the pipeline
// reads; everything else is ignored on decode.
type playerResponse struct {
	Captions *struct {
		Renderer struct {
			CaptionTracks []models.CaptionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

// fetchPlayer posts the player request for videoID using key and returns the
// decoded response.
func fetchPlayer(ctx context.Context, f *fetcher.Client, playerURL, key, videoID string) (*playerResponse, error) {
	reqURL := playerURL + "?key=" + url.QueryEscape(key)
	payload := playerRequest{
		Context: playerContext{
			Client: playerClient{
				ClientName:    androidClientName,
				ClientVersion: androidClientVersion,
			},
		},
		VideoID: videoID,
	}
	body, status, err := f.PostJSON(ctx, reqURL, payload)
	if err != nil {
		return nil, err
	}
	if !fetcher.IsSuccess(status) {
		return nil, &fetcher.UpstreamError{URL: playerURL, StatusCode: status}
	}
	var resp playerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, extractionErrorf("player response is not valid JSON: %v", err)
	}
	return &resp, nil
}

// tracks returns the advertised caption tracks, or nil when the response has
// no captions section.
func (r *playerResponse) tracks() []models.CaptionTrack {
	if r.Captions == nil {
		return nil
	}
	return r.Captions.Renderer.CaptionTracks
}

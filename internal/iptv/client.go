package iptv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voyagen/telescribe/internal/fetcher"
	"github.com/voyagen/telescribe/internal/models"
)

// Client retrieves the public channel and stream datasets. Both are static
// JSON documents refetched on every call; nothing is cached between
// requests.
type Client struct {
	fetcher     *fetcher.Client
	channelsURL string
	streamsURL  string
}

func NewClient(f *fetcher.Client, channelsURL, streamsURL string) *Client {
	return &Client{fetcher: f, channelsURL: channelsURL, streamsURL: streamsURL}
}

// Channels fetches and decodes the channel dataset. Slice fields are
// normalized so downstream code never sees nil lists.
func (c *Client) Channels(ctx context.Context) ([]models.Channel, error) {
	body, err := c.dataset(ctx, c.channelsURL)
	if err != nil {
		return nil, err
	}
	var channels []models.Channel
	if err := json.Unmarshal(body, &channels); err != nil {
		return nil, fmt.Errorf("decode channels dataset: %w", err)
	}
	for i := range channels {
		normalize(&channels[i])
	}
	return channels, nil
}

// Streams fetches and decodes the stream dataset.
func (c *Client) Streams(ctx context.Context) ([]models.Stream, error) {
	body, err := c.dataset(ctx, c.streamsURL)
	if err != nil {
		return nil, err
	}
	var streams []models.Stream
	if err := json.Unmarshal(body, &streams); err != nil {
		return nil, fmt.Errorf("decode streams dataset: %w", err)
	}
	return streams, nil
}

func (c *Client) dataset(ctx context.Context, url string) ([]byte, error) {
	body, status, err := c.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if !fetcher.IsSuccess(status) {
		return nil, &fetcher.UpstreamError{URL: url, StatusCode: status}
	}
	return body, nil
}

// normalize replaces nil slices with empty ones so responses render [] and
// not null.
func normalize(ch *models.Channel) {
	if ch.AltNames == nil {
		ch.AltNames = []string{}
	}
	if ch.BroadcastArea == nil {
		ch.BroadcastArea = []string{}
	}
	if ch.Languages == nil {
		ch.Languages = []string{}
	}
	if ch.Categories == nil {
		ch.Categories = []string{}
	}
}

package iptv

import (
	"context"
	"log"
	"strings"

	"github.com/voyagen/telescribe/internal/models"
)

// Service answers channel searches against the public datasets. Results are
// capped at maxChannels entries and each channel carries at most maxStreams
// streams, while the reported totals stay uncapped.
type Service struct {
	client         *Client
	includeStreams bool
	maxChannels    int
	maxStreams     int
}

func NewService(client *Client, includeStreams bool, maxChannels, maxStreams int) *Service {
	return &Service{
		client:         client,
		includeStreams: includeStreams,
		maxChannels:    maxChannels,
		maxStreams:     maxStreams,
	}
}

// SearchResult is the outcome of one search. TotalResults counts every
// match; Channels holds the capped subset that is returned.
type SearchResult struct {
	Query        string
	TotalResults int
	Channels     []ChannelMatch
}

// ChannelMatch pairs a matched channel with its streams. StreamsCount is the
// full number of streams known for the channel even when Streams was capped.
// Both stay zero when the stream join is disabled.
type ChannelMatch struct {
	Channel      models.Channel
	StreamsCount int
	Streams      []models.Stream
}

// Search filters the channel dataset by query and, when enabled, attaches
// streams to each match. A failure to fetch streams degrades to matches
// without streams; a failure to fetch channels fails the search.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptySearch
	}

	channels, streams, err := s.datasets(ctx)
	if err != nil {
		return nil, err
	}

	matches := FilterChannels(channels, query)
	total := len(matches)
	if len(matches) > s.maxChannels {
		matches = matches[:s.maxChannels]
	}

	idx := BuildStreamIndex(streams)
	result := &SearchResult{Query: query, TotalResults: total}
	for _, ch := range matches {
		m := ChannelMatch{Channel: ch}
		if s.includeStreams {
			all := idx[ch.ID]
			m.StreamsCount = len(all)
			if len(all) > s.maxStreams {
				all = all[:s.maxStreams]
			}
			m.Streams = all
		}
		result.Channels = append(result.Channels, m)
	}
	return result, nil
}

// IncludeStreams reports whether matches carry stream data.
func (s *Service) IncludeStreams() bool { return s.includeStreams }

// datasets fetches the channel and stream datasets concurrently. The stream
// dataset is skipped entirely when the join is disabled, and its failure is
// logged instead of propagated.
func (s *Service) datasets(ctx context.Context) ([]models.Channel, []models.Stream, error) {
	if !s.includeStreams {
		channels, err := s.client.Channels(ctx)
		return channels, nil, err
	}

	type channelsResult struct {
		channels []models.Channel
		err      error
	}
	type streamsResult struct {
		streams []models.Stream
		err     error
	}
	chCh := make(chan channelsResult, 1)
	stCh := make(chan streamsResult, 1)
	go func() {
		channels, err := s.client.Channels(ctx)
		chCh <- channelsResult{channels: channels, err: err}
	}()
	go func() {
		streams, err := s.client.Streams(ctx)
		stCh <- streamsResult{streams: streams, err: err}
	}()

	chRes := <-chCh
	stRes := <-stCh
	if chRes.err != nil {
		return nil, nil, chRes.err
	}
	if stRes.err != nil {
		log.Printf("streams dataset unavailable, serving channels without streams: %v", stRes.err)
		return chRes.channels, nil, nil
	}
	return chRes.channels, stRes.streams, nil
}

package config

import "time"

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	defaultWatchURL    = "https://www.youtube.com/watch"
	defaultPlayerURL   = "https://www.youtube.com/youtubei/v1/player"
	defaultChannelsURL = "https://iptv-org.github.io/api/channels.json"
	defaultStreamsURL  = "https://iptv-org.github.io/api/streams.json"
)

// applyDefaults fills every zero-valued field. IncludeStreams is not
// touched here; its default is set where absence can be told apart from an
// explicit false.
func applyDefaults(c *Config) {
	if c.ServerPort == "" {
		c.ServerPort = "8080"
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.TranscriptTimeout == 0 {
		c.TranscriptTimeout = 10 * time.Second
	}
	if c.DatasetTimeout == 0 {
		c.DatasetTimeout = 15 * time.Second
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
	if c.MaxChannels == 0 {
		c.MaxChannels = 20
	}
	if c.MaxStreams == 0 {
		c.MaxStreams = 5
	}
	if c.WatchURL == "" {
		c.WatchURL = defaultWatchURL
	}
	if c.PlayerURL == "" {
		c.PlayerURL = defaultPlayerURL
	}
	if c.ChannelsURL == "" {
		c.ChannelsURL = defaultChannelsURL
	}
	if c.StreamsURL == "" {
		c.StreamsURL = defaultStreamsURL
	}
	if c.Developer == "" {
		c.Developer = "@voyagen"
	}
	if c.TelegramChannel == "" {
		c.TelegramChannel = "https://t.me/telescribe"
	}
}

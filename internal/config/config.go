package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration: the listen port, upstream
// endpoints, fetch timeouts and the TV search result caps.
type Config struct {
	ServerPort string
	UserAgent  string

	TranscriptTimeout time.Duration
	DatasetTimeout    time.Duration
	DefaultLanguage   string

	MaxChannels    int
	MaxStreams     int
	IncludeStreams bool

	WatchURL    string
	PlayerURL   string
	ChannelsURL string
	StreamsURL  string

	Developer       string
	TelegramChannel string
}

// Load builds config from environment variables. If SERVER_PORT is not set,
// Load tries to load .env.local and .env from the current directory first.
// Every variable is optional; unset or unparsable values keep their
// defaults.
func Load() *Config {
	if os.Getenv("SERVER_PORT") == "" {
		loadEnvFiles()
	}
	c := &Config{
		ServerPort:      os.Getenv("SERVER_PORT"),
		UserAgent:       os.Getenv("FETCHER_USER_AGENT"),
		DefaultLanguage: os.Getenv("DEFAULT_LANGUAGE"),
		WatchURL:        os.Getenv("YOUTUBE_WATCH_URL"),
		PlayerURL:       os.Getenv("YOUTUBE_PLAYER_URL"),
		ChannelsURL:     os.Getenv("TV_CHANNELS_URL"),
		StreamsURL:      os.Getenv("TV_STREAMS_URL"),
		Developer:       os.Getenv("ATTRIBUTION_DEVELOPER"),
		TelegramChannel: os.Getenv("ATTRIBUTION_TELEGRAM"),
		IncludeStreams:  true,
	}
	if s := os.Getenv("TRANSCRIPT_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			c.TranscriptTimeout = d
		}
	}
	if s := os.Getenv("DATASET_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			c.DatasetTimeout = d
		}
	}
	if s := os.Getenv("TV_MAX_CHANNELS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			c.MaxChannels = n
		}
	}
	if s := os.Getenv("TV_MAX_STREAMS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			c.MaxStreams = n
		}
	}
	if s := os.Getenv("TV_INCLUDE_STREAMS"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			c.IncludeStreams = v
		}
	}
	applyDefaults(c)
	return c
}

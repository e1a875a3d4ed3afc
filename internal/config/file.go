package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	ServerPort        string `yaml:"server_port"`
	UserAgent         string `yaml:"user_agent"`
	TranscriptTimeout string `yaml:"transcript_timeout"`
	DatasetTimeout    string `yaml:"dataset_timeout"`
	DefaultLanguage   string `yaml:"default_language"`
	MaxChannels       int    `yaml:"max_channels"`
	MaxStreams        int    `yaml:"max_streams"`
	IncludeStreams    *bool  `yaml:"include_streams"`
	WatchURL          string `yaml:"watch_url"`
	PlayerURL         string `yaml:"player_url"`
	ChannelsURL       string `yaml:"channels_url"`
	StreamsURL        string `yaml:"streams_url"`
	Developer         string `yaml:"developer"`
	TelegramChannel   string `yaml:"telegram_channel"`
}

// LoadFromFile loads config from a YAML file. Every key is optional;
// omitted or unparsable values keep their defaults. Durations are written
// as strings ("10s", "1m30s"); include_streams distinguishes an explicit
// false from an omitted key.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	c := &Config{
		ServerPort:      f.ServerPort,
		UserAgent:       f.UserAgent,
		DefaultLanguage: f.DefaultLanguage,
		WatchURL:        f.WatchURL,
		PlayerURL:       f.PlayerURL,
		ChannelsURL:     f.ChannelsURL,
		StreamsURL:      f.StreamsURL,
		Developer:       f.Developer,
		TelegramChannel: f.TelegramChannel,
		IncludeStreams:  true,
	}
	if f.TranscriptTimeout != "" {
		if d, err := time.ParseDuration(f.TranscriptTimeout); err == nil && d > 0 {
			c.TranscriptTimeout = d
		}
	}
	if f.DatasetTimeout != "" {
		if d, err := time.ParseDuration(f.DatasetTimeout); err == nil && d > 0 {
			c.DatasetTimeout = d
		}
	}
	if f.MaxChannels > 0 {
		c.MaxChannels = f.MaxChannels
	}
	if f.MaxStreams > 0 {
		c.MaxStreams = f.MaxStreams
	}
	if f.IncludeStreams != nil {
		c.IncludeStreams = *f.IncludeStreams
	}
	applyDefaults(c)
	return c, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/voyagen/telescribe/internal/config"
	"github.com/voyagen/telescribe/internal/fetcher"
	"github.com/voyagen/telescribe/internal/iptv"
	"github.com/voyagen/telescribe/internal/server"
	"github.com/voyagen/telescribe/internal/transcript"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Optional config file path (YAML); else use environment variables")
	flag.Parse()

	var cfg *config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Load()
	}

	transcripts := transcript.NewService(
		fetcher.New(cfg.UserAgent, cfg.TranscriptTimeout),
		transcript.RegexKeyExtractor{},
		cfg.WatchURL,
		cfg.PlayerURL,
	)

	datasets := iptv.NewClient(fetcher.New(cfg.UserAgent, cfg.DatasetTimeout), cfg.ChannelsURL, cfg.StreamsURL)
	channels := iptv.NewService(datasets, cfg.IncludeStreams, cfg.MaxChannels, cfg.MaxStreams)
	if cfg.IncludeStreams {
		fmt.Fprintln(os.Stderr, "stream join enabled (channels carry stream links)")
	} else {
		fmt.Fprintln(os.Stderr, "stream join disabled (TV_INCLUDE_STREAMS=false)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(transcripts, channels, cfg, version)
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

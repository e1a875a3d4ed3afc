package iptv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/voyagen/telescribe/internal/fetcher"
)

const channelsDoc = `[
	{"id":"us-cnn","name":"CNN International","alt_names":null,"country":"US","categories":["news"]},
	{"id":"uk-bbc","name":"BBC One","country":"UK"},
	{"id":"de-cnnx","name":"CNNx","country":"DE"}
]`

// streamsDoc gives us-cnn seven streams so cap behavior is observable.
func streamsDoc() string {
	doc := `[{"channel":"uk-bbc","url":"http://bbc/1","quality":"720p"}`
	for i := 1; i <= 7; i++ {
		doc += fmt.Sprintf(`,{"channel":"us-cnn","url":"http://cnn/%d","title":"CNN %d"}`, i, i)
	}
	return doc + `]`
}

func newDatasetService(t *testing.T, includeStreams bool, streamsStatus int, streamHits *atomic.Int32) *Service {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/channels.json", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, channelsDoc)
	})
	mux.HandleFunc("/streams.json", func(w http.ResponseWriter, _ *http.Request) {
		if streamHits != nil {
			streamHits.Add(1)
		}
		if streamsStatus != http.StatusOK {
			http.Error(w, "dataset down", streamsStatus)
			return
		}
		fmt.Fprint(w, streamsDoc())
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(fetcher.New("", time.Second), srv.URL+"/channels.json", srv.URL+"/streams.json")
	return NewService(client, includeStreams, 20, 5)
}

func TestSearchAttachesStreams(t *testing.T) {
	svc := newDatasetService(t, true, http.StatusOK, nil)

	result, err := svc.Search(context.Background(), "cnn")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.TotalResults != 2 {
		t.Fatalf("TotalResults = %d, want 2", result.TotalResults)
	}

	cnn := result.Channels[0]
	if cnn.Channel.ID != "us-cnn" {
		t.Fatalf("first match = %q, want us-cnn", cnn.Channel.ID)
	}
	if cnn.StreamsCount != 7 {
		t.Errorf("StreamsCount = %d, want 7 (uncapped count)", cnn.StreamsCount)
	}
	if len(cnn.Streams) != 5 {
		t.Fatalf("got %d streams, want 5 (capped)", len(cnn.Streams))
	}
	for i, st := range cnn.Streams {
		if want := fmt.Sprintf("http://cnn/%d", i+1); st.URL != want {
			t.Errorf("stream %d = %q, want %q (first five in dataset order)", i, st.URL, want)
		}
	}

	if x := result.Channels[1]; x.Channel.ID != "de-cnnx" || x.StreamsCount != 0 || len(x.Streams) != 0 {
		t.Errorf("de-cnnx = %+v, want zero streams", x)
	}
}

func TestSearchNormalizesChannelLists(t *testing.T) {
	svc := newDatasetService(t, true, http.StatusOK, nil)

	result, err := svc.Search(context.Background(), "cnn international")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	ch := result.Channels[0].Channel
	if ch.AltNames == nil || ch.Languages == nil || ch.BroadcastArea == nil {
		t.Errorf("nil slice survived normalization: %+v", ch)
	}
	if len(ch.Categories) != 1 || ch.Categories[0] != "news" {
		t.Errorf("Categories = %v, want [news]", ch.Categories)
	}
}

func TestSearchCapsChannels(t *testing.T) {
	doc := `[`
	for i := 0; i < 25; i++ {
		if i > 0 {
			doc += ","
		}
		doc += fmt.Sprintf(`{"id":"ch-%02d","name":"Sports %02d"}`, i, i)
	}
	doc += `]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, doc)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(fetcher.New("", time.Second), srv.URL+"/channels.json", srv.URL+"/streams.json")
	svc := NewService(client, false, 20, 5)

	result, err := svc.Search(context.Background(), "sports")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.TotalResults != 25 {
		t.Errorf("TotalResults = %d, want 25 (true match count)", result.TotalResults)
	}
	if len(result.Channels) != 20 {
		t.Errorf("got %d channels, want 20 (capped)", len(result.Channels))
	}
	if result.Channels[0].Channel.ID != "ch-00" || result.Channels[19].Channel.ID != "ch-19" {
		t.Errorf("cap must keep the first 20 in dataset order, got %q..%q",
			result.Channels[0].Channel.ID, result.Channels[19].Channel.ID)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newDatasetService(t, true, http.StatusOK, nil)
	for _, query := range []string{"", "   ", "\t"} {
		if _, err := svc.Search(context.Background(), query); !errors.Is(err, ErrEmptySearch) {
			t.Errorf("Search(%q): got %v, want ErrEmptySearch", query, err)
		}
	}
}

func TestSearchStreamsFailureDegrades(t *testing.T) {
	svc := newDatasetService(t, true, http.StatusInternalServerError, nil)

	result, err := svc.Search(context.Background(), "cnn")
	if err != nil {
		t.Fatalf("Search should tolerate a streams failure, got %v", err)
	}
	if result.TotalResults != 2 {
		t.Errorf("TotalResults = %d, want 2", result.TotalResults)
	}
	for _, m := range result.Channels {
		if m.StreamsCount != 0 || len(m.Streams) != 0 {
			t.Errorf("channel %q carries streams despite dataset failure", m.Channel.ID)
		}
	}
}

func TestSearchChannelsFailureFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "dataset down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(fetcher.New("", time.Second), srv.URL+"/channels.json", srv.URL+"/streams.json")
	svc := NewService(client, true, 20, 5)

	_, err := svc.Search(context.Background(), "cnn")
	var upstreamErr *fetcher.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("got %v, want UpstreamError", err)
	}
}

func TestSearchSkipsStreamsWhenDisabled(t *testing.T) {
	var hits atomic.Int32
	svc := newDatasetService(t, false, http.StatusOK, &hits)

	result, err := svc.Search(context.Background(), "cnn")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("streams dataset fetched %d times with join disabled, want 0", hits.Load())
	}
	for _, m := range result.Channels {
		if m.Streams != nil || m.StreamsCount != 0 {
			t.Errorf("channel %q carries stream data with join disabled", m.Channel.ID)
		}
	}
}

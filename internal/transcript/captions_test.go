package transcript

import (
	"errors"
	"testing"

	"github.com/voyagen/telescribe/internal/models"
)

func TestParseCaptions(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="utf-8" ?><transcript>` +
		`<text start="0.08" dur="1.52">Hello there</text>` +
		`<text start="1.6" dur="2.25">General Kenobi</text>` +
		`</transcript>`)

	fragments, err := ParseCaptions(doc)
	if err != nil {
		t.Fatalf("ParseCaptions: %v", err)
	}
	want := []models.TranscriptFragment{
		{StartTime: 0.08, Duration: 1.52, Text: "Hello there"},
		{StartTime: 1.6, Duration: 2.25, Text: "General Kenobi"},
	}
	if len(fragments) != len(want) {
		t.Fatalf("got %d fragments, want %d", len(fragments), len(want))
	}
	for i := range want {
		if fragments[i] != want[i] {
			t.Errorf("fragment %d = %+v, want %+v", i, fragments[i], want[i])
		}
	}
}

func TestParseCaptionsDecodesEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "Tom &amp; Jerry", "Tom & Jerry"},
		{"angle brackets", "&lt;i&gt;italic&lt;/i&gt;", "<i>italic</i>"},
		{"quote", "she said &quot;hi&quot;", `she said "hi"`},
		{"apostrophe", "it&#39;s fine", "it's fine"},
		{"double escaped stays escaped once", "a &amp;amp; b", "a &amp; b"},
		{"escaped lt reference", "literal &amp;lt; here", "literal &lt; here"},
		{"no entities", "plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := []byte(`<text start="0" dur="1">` + tt.in + `</text>`)
			fragments, err := ParseCaptions(doc)
			if err != nil {
				t.Fatalf("ParseCaptions: %v", err)
			}
			if fragments[0].Text != tt.want {
				t.Errorf("got %q, want %q", fragments[0].Text, tt.want)
			}
		})
	}
}

func TestParseCaptionsSkipsNonMatchingElements(t *testing.T) {
	// Extra attributes and nested markup fall outside the recognized shape.
	doc := []byte(`<transcript>` +
		`<text start="0" dur="1" w="1">styled</text>` +
		`<text start="1" dur="1">kept</text>` +
		`<text start="2" dur="1">nested <b>bold</b></text>` +
		`</transcript>`)

	fragments, err := ParseCaptions(doc)
	if err != nil {
		t.Fatalf("ParseCaptions: %v", err)
	}
	if len(fragments) != 1 || fragments[0].Text != "kept" {
		t.Fatalf("got %+v, want only the plain element", fragments)
	}
}

func TestParseCaptionsEmpty(t *testing.T) {
	_, err := ParseCaptions([]byte(`<transcript></transcript>`))
	if !errors.Is(err, ErrEmptyTranscript) {
		t.Fatalf("got %v, want ErrEmptyTranscript", err)
	}
}

func TestParseCaptionsBadNumber(t *testing.T) {
	doc := []byte(`<text start="abc" dur="1">x</text>`)
	_, err := ParseCaptions(doc)
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("got %v, want ExtractionError", err)
	}
}

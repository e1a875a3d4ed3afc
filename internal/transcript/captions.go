package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/voyagen/telescribe/internal/models"
)

var captionLineRE = regexp.MustCompile(`<text start="([^"]+)" dur="([^"]+)">([^<]+)</text>`)

// entityReplacer decodes the five entities the timedtext payload escapes.
// strings.Replacer makes a single left-to-right pass and never rescans
// replaced output, so "a &amp;amp; b" decodes to "a &amp; b", not "a & b".
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// ParseCaptions extracts timed fragments from a timedtext XML document.
// Elements with extra attributes or nested markup are skipped rather than
// rejected. Returns ErrEmptyTranscript when no fragment matches.
func ParseCaptions(doc []byte) ([]models.TranscriptFragment, error) {
	matches := captionLineRE.FindAllSubmatch(doc, -1)
	if len(matches) == 0 {
		return nil, ErrEmptyTranscript
	}
	fragments := make([]models.TranscriptFragment, 0, len(matches))
	for _, m := range matches {
		start, err := strconv.ParseFloat(string(m[1]), 64)
		if err != nil {
			return nil, extractionErrorf("caption start attribute %q is not a number", m[1])
		}
		dur, err := strconv.ParseFloat(string(m[2]), 64)
		if err != nil {
			return nil, extractionErrorf("caption dur attribute %q is not a number", m[2])
		}
		fragments = append(fragments, models.TranscriptFragment{
			StartTime: start,
			Duration:  dur,
			Text:      entityReplacer.Replace(string(m[3])),
		})
	}
	return fragments, nil
}

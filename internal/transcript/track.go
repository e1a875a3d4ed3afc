package transcript

import (
	"regexp"

	"github.com/voyagen/telescribe/internal/models"
)

var fmtParamRE = regexp.MustCompile(`&fmt=\w+`)

// selectTrack returns the first track whose language code equals language,
// falling back to the first track when no code matches. tracks must be
// non-empty.
func selectTrack(tracks []models.CaptionTrack, language string) models.CaptionTrack {
	for _, t := range tracks {
		if t.LanguageCode == language {
			return t
		}
	}
	return tracks[0]
}

// stripFormatParam removes any &fmt=... fragment from a caption URL so the
// upstream serves the default XML document instead of an alternate format.
func stripFormatParam(captionURL string) string {
	return fmtParamRE.ReplaceAllString(captionURL, "")
}

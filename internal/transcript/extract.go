package transcript

import "regexp"

// KeyExtractor pulls the Innertube API key out of a watch page body. The
// watch page markup changes without notice; the interface isolates the
// matching strategy from the rest of the pipeline.
type KeyExtractor interface {
	ExtractKey(page []byte) (string, error)
}

var apiKeyRE = regexp.MustCompile(`"INNERTUBE_API_KEY":"([^"]+)"`)

// RegexKeyExtractor matches the INNERTUBE_API_KEY assignment embedded in the
// watch page's inline config JSON.
type RegexKeyExtractor struct{}

func (RegexKeyExtractor) ExtractKey(page []byte) (string, error) {
	m := apiKeyRE.FindSubmatch(page)
	if m == nil {
		return "", &ExtractionError{Reason: "INNERTUBE_API_KEY not found in watch page"}
	}
	return string(m[1]), nil
}

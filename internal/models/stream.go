package models

// Stream is one entry from the public stream dataset. Channel carries the
// id of the channel the stream belongs to and is empty for unbound streams.
type Stream struct {
	Channel   string `json:"channel"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Quality   string `json:"quality"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
}

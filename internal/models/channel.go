package models

// Channel is one entry from the public channel dataset. Fields absent from
// the upstream JSON decode to their zero values; slice fields may be nil
// until normalized by the dataset client.
type Channel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	AltNames      []string `json:"alt_names"`
	Network       string   `json:"network"`
	Country       string   `json:"country"`
	Subdivision   string   `json:"subdivision"`
	City          string   `json:"city"`
	BroadcastArea []string `json:"broadcast_area"`
	Languages     []string `json:"languages"`
	Categories    []string `json:"categories"`
	IsNSFW        bool     `json:"is_nsfw"`
	Launched      string   `json:"launched"`
	Closed        string   `json:"closed"`
	ReplacedBy    string   `json:"replaced_by"`
	Website       string   `json:"website"`
	Logo          string   `json:"logo"`
}

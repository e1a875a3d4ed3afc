package models

// CaptionTrack is one caption track advertised by the player response.
type CaptionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
}

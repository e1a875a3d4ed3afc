package iptv

import (
	"strings"

	"github.com/voyagen/telescribe/internal/models"
)

// FilterChannels returns the channels whose name contains query,
// case-insensitively, preserving dataset order. Only the name field is
// matched; alternative names and network are not consulted.
func FilterChannels(channels []models.Channel, query string) []models.Channel {
	q := strings.ToLower(query)
	var matches []models.Channel
	for _, ch := range channels {
		if strings.Contains(strings.ToLower(ch.Name), q) {
			matches = append(matches, ch)
		}
	}
	return matches
}

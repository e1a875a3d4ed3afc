package iptv

import "github.com/voyagen/telescribe/internal/models"

// StreamIndex groups streams by the channel id they belong to, preserving
// dataset order within each group.
type StreamIndex map[string][]models.Stream

// BuildStreamIndex indexes streams by channel id. Streams with no channel
// binding cannot be joined and are left out.
func BuildStreamIndex(streams []models.Stream) StreamIndex {
	idx := make(StreamIndex)
	for _, st := range streams {
		if st.Channel == "" {
			continue
		}
		idx[st.Channel] = append(idx[st.Channel], st)
	}
	return idx
}

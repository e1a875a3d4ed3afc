package iptv

import "errors"

// ErrEmptySearch is returned when the search term is missing or
// whitespace-only.
var ErrEmptySearch = errors.New("search parameter is required")

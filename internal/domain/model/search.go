package model

import "time"

// SearchQuery describes a restaurant search request.
type SearchQuery struct {
	Text     string
	Page     int
	PageSize int
	OpenAt   *time.Time
	MaxPrice int64
}

// SearchCandidate is a restaurant with the data needed for scoring and filtering.
type SearchCandidate struct {
	Restaurant Restaurant
	Dishes     []string
	MinPrice   int64
}

// ScoredRestaurant is a search hit.
type ScoredRestaurant struct {
	Restaurant Restaurant
	Score      float64
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Items    []ScoredRestaurant
	Total    int
	Page     int
	PageSize int
}

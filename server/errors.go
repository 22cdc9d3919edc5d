package server

import "errors"

var (
	// ErrRecommenderRequired is returned when a recommender is not provided.
	ErrRecommenderRequired = errors.New("recommender required")
)

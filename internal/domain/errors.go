package domain

import "errors"

var (
	// ErrMalformedArticle marks input whose required fields are missing or not numeric.
	ErrMalformedArticle = errors.New("malformed article")
	// ErrArticleNotFound is returned for lookups by an unknown article id.
	ErrArticleNotFound = errors.New("article not found")
	// ErrInvalidSortMode is returned when a sort mode name is not recognised.
	ErrInvalidSortMode = errors.New("invalid sort mode")
)

package service

import "errors"

var (
	// ErrEmptyContent rejects messages that are blank after trimming.
	ErrEmptyContent = errors.New("message content is empty")
	// ErrBadVoteValue rejects vote values outside {-1, 1}.
	ErrBadVoteValue = errors.New("vote value must be -1 or 1")
	// ErrBadRatingValue rejects rating values outside 1..10.
	ErrBadRatingValue = errors.New("rating value must be between 1 and 10")
)

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services and repositories. Controllers map them to HTTP status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// ErrInvalidTransition is returned when a participant tries to respond to an invitation that is no longer pending.
var ErrInvalidTransition = fmt.Errorf("%w: invitation already answered", ErrInvalidInput)

// ErrNoVote is returned when retracting a vote that the user never cast.
var ErrNoVote = fmt.Errorf("%w: no vote found to remove", ErrNotFound)

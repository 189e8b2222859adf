package sched

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	// ErrInvalidTask is returned for tasks that fail validation.
	ErrInvalidTask = errors.New("invalid task")
	// ErrInvalidQuantum is returned when a Round-Robin quantum is not positive.
	ErrInvalidQuantum = errors.New("quantum must be positive")
	// ErrQueueFull is returned when a bounded ready queue has no free slot.
	ErrQueueFull = errors.New("ready queue is full")
	// ErrUnknownPolicy is returned for an unrecognized policy name.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")
)

// IsValidation reports whether err (or any error combined into it) is a
// task validation failure.
func IsValidation(err error) bool {
	for _, e := range multierr.Errors(err) {
		if errors.Cause(e) == ErrInvalidTask {
			return true
		}
	}
	return false
}

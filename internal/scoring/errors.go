package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a score is requested for zero answers.
	ErrEmptyInput = errors.New("no answers provided")
	// ErrInvalidAnswer flags a Likert value outside [MinAnswer, MaxAnswer].
	ErrInvalidAnswer = errors.New("answer out of range")
	// ErrAlreadySubmitted is returned when a student already has a stored response.
	ErrAlreadySubmitted = errors.New("survey already submitted")
	// ErrDataAccess marks failures of the record store; the cause stays reachable with errors.Is/As.
	ErrDataAccess = errors.New("data access failure")
	// ErrUnknownScale is returned by ParseScale for unrecognised tags.
	ErrUnknownScale = errors.New("unknown score scale")
)

// DataAccess wraps a collaborator error so that both ErrDataAccess and the cause match.
func DataAccess(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrDataAccess, op, err)
}

// Package dcerrors contains the typed errors returned when building and evaluating placements.
// Callers should match on them with errors.As, since they are usually wrapped.
//
// If multiple errors occur in some function (e.g., several jobs of a placement spec do not fit),
// that function should return an error of type multierror.Error from package
// github.com/hashicorp/go-multierror that encapsulates those individual errors.
package dcerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is a generic error to be returned on invalid argument.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Name of the field referred to, e.g., "timeLimit"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message to include with the error message, e.g., explaining why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %v is invalid for field %q", err.Value, err.Name)
	} else {
		return fmt.Sprintf("value %v is invalid for field %q; %s", err.Value, err.Name, err.Message)
	}
}

// ErrJobRejected is returned when a job in an explicit assignment does not fit on the processor it
// was assigned to.
type ErrJobRejected struct {
	Placement     string // Name of the placement, e.g., "two-processors"
	Processor     int    // Index of the processor within the placement
	Job           int    // Index of the job within the processor's assignment
	ExecutionTime int    // Execution time of the rejected job
	Remaining     int    // Time left on the processor when the job was offered
}

func (err *ErrJobRejected) Error() string {
	s := fmt.Sprintf(
		"job %d with execution time %d does not fit on processor %d with %d time remaining",
		err.Job, err.ExecutionTime, err.Processor, err.Remaining,
	)
	if err.Placement != "" {
		s = fmt.Sprintf("placement %q: %s", err.Placement, s)
	}
	return s
}

// IsInvalidArgument returns true if err or any error in its chain is an *ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	var e *ErrInvalidArgument
	return errors.As(err, &e)
}

// IsJobRejected returns true if err or any error in its chain is an *ErrJobRejected.
func IsJobRejected(err error) bool {
	var e *ErrJobRejected
	return errors.As(err, &e)
}

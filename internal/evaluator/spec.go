package evaluator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	commonconfig "github.com/armadaproject/datacenter/internal/common/config"
	"github.com/armadaproject/datacenter/internal/common/dcerrors"
	"github.com/armadaproject/datacenter/internal/datacenter"
)

// PlacementSpec describes an already-decided assignment of jobs to processors.
// Jobs are offered to their processor in the order listed.
type PlacementSpec struct {
	// Name of the placement; defaults to the name of the file it was read from.
	Name       string
	Processors []*ProcessorSpec `validate:"dive,required"`
}

type ProcessorSpec struct {
	TimeLimit int        `validate:"gt=0"`
	Jobs      []*JobSpec `validate:"dive,required"`
}

type JobSpec struct {
	ExecutionTime int `validate:"min=0"`
	MemoryUsage   int `validate:"min=0"`
}

func (spec *PlacementSpec) NumJobs() int {
	n := 0
	for _, processor := range spec.Processors {
		n += len(processor.Jobs)
	}
	return n
}

// Validate returns an error wrapping one *dcerrors.ErrInvalidArgument per invalid field.
func (spec *PlacementSpec) Validate() error {
	err := commonconfig.Validate(spec)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.WithStack(err)
	}
	var result *multierror.Error
	for _, fieldErr := range validationErrors {
		result = multierror.Append(result, &dcerrors.ErrInvalidArgument{
			Name:    fieldErr.Namespace(),
			Value:   fieldErr.Value(),
			Message: fmt.Sprintf("failed %s validation", fieldErr.Tag()),
		})
	}
	return errors.WithMessagef(result.ErrorOrNil(), "invalid placement spec %q", spec.Name)
}

// BuildPlacement validates spec and records its assignment in a new placement.
// Jobs that do not fit on the processor they were assigned to are not placed; if there are any,
// an error wrapping one *dcerrors.ErrJobRejected per such job is returned instead of a placement.
func BuildPlacement(spec *PlacementSpec) (*datacenter.Placement, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	placement := datacenter.NewPlacement()
	var rejected *multierror.Error
	for i, processorSpec := range spec.Processors {
		processor, err := datacenter.NewProcessor(processorSpec.TimeLimit)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		for j, jobSpec := range processorSpec.Jobs {
			job := datacenter.NewJob(jobSpec.ExecutionTime, jobSpec.MemoryUsage)
			remaining := processor.RemainingTime()
			if !processor.AddJob(job) {
				rejected = multierror.Append(rejected, &dcerrors.ErrJobRejected{
					Placement:     spec.Name,
					Processor:     i,
					Job:           j,
					ExecutionTime: job.ExecutionTime(),
					Remaining:     remaining,
				})
			}
		}
		placement.AddProcessor(processor)
	}
	if err := rejected.ErrorOrNil(); err != nil {
		return nil, err
	}
	return placement, nil
}

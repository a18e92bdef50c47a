package evaluator

import (
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armadaproject/datacenter/internal/common/dcerrors"
	"github.com/armadaproject/datacenter/internal/datacenter"
)

func TestBuildPlacement(t *testing.T) {
	placement, err := BuildPlacement(twoProcessorSpec())
	require.NoError(t, err)

	expected := datacenter.NewPlacement()
	p1, err := datacenter.NewProcessor(10)
	require.NoError(t, err)
	require.True(t, p1.AddJob(datacenter.NewJob(4, 5)))
	require.True(t, p1.AddJob(datacenter.NewJob(5, 9)))
	p2, err := datacenter.NewProcessor(10)
	require.NoError(t, err)
	require.True(t, p2.AddJob(datacenter.NewJob(10, 3)))
	expected.AddProcessor(p1)
	expected.AddProcessor(p2)

	assert.True(t, expected.Equal(placement))
}

func TestBuildPlacement_RejectedJobs(t *testing.T) {
	spec := &PlacementSpec{
		Name: "overfull",
		Processors: []*ProcessorSpec{
			{TimeLimit: 10, Jobs: []*JobSpec{job(4, 5), job(5, 9), job(3, 1)}},
			{TimeLimit: 2, Jobs: []*JobSpec{job(3, 1), job(2, 1)}},
		},
	}

	placement, err := BuildPlacement(spec)

	assert.Nil(t, placement)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)

	var first, second *dcerrors.ErrJobRejected
	require.True(t, errors.As(merr.Errors[0], &first))
	require.True(t, errors.As(merr.Errors[1], &second))
	assert.Equal(t, dcerrors.ErrJobRejected{Placement: "overfull", Processor: 0, Job: 2, ExecutionTime: 3, Remaining: 1}, *first)
	assert.Equal(t, dcerrors.ErrJobRejected{Placement: "overfull", Processor: 1, Job: 0, ExecutionTime: 3, Remaining: 2}, *second)
}

func TestBuildPlacement_VeryLongJobRejected(t *testing.T) {
	spec := &PlacementSpec{
		Name:       "very-long",
		Processors: []*ProcessorSpec{{TimeLimit: 10, Jobs: []*JobSpec{job(5, 1), job(math.MaxInt, 1)}}},
	}

	placement, err := BuildPlacement(spec)

	assert.Nil(t, placement)
	var rejected *dcerrors.ErrJobRejected
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, dcerrors.ErrJobRejected{Placement: "very-long", Processor: 0, Job: 1, ExecutionTime: math.MaxInt, Remaining: 5}, *rejected)
}

func TestBuildPlacement_Invalid(t *testing.T) {
	tests := map[string]*PlacementSpec{
		"zero time limit": {
			Processors: []*ProcessorSpec{{TimeLimit: 0}},
		},
		"negative execution time": {
			Processors: []*ProcessorSpec{{TimeLimit: 5, Jobs: []*JobSpec{job(-1, 1)}}},
		},
		"negative memory usage": {
			Processors: []*ProcessorSpec{{TimeLimit: 5, Jobs: []*JobSpec{job(1, -1)}}},
		},
		"nil processor": {
			Processors: []*ProcessorSpec{nil},
		},
		"nil job": {
			Processors: []*ProcessorSpec{{TimeLimit: 5, Jobs: []*JobSpec{nil}}},
		},
	}
	for name, spec := range tests {
		t.Run(name, func(t *testing.T) {
			placement, err := BuildPlacement(spec)
			assert.Nil(t, placement)
			assert.True(t, dcerrors.IsInvalidArgument(err), "unexpected error %v", err)
		})
	}
}

func TestBuildPlacement_Empty(t *testing.T) {
	placement, err := BuildPlacement(&PlacementSpec{Name: "empty"})
	require.NoError(t, err)
	assert.True(t, datacenter.NewPlacement().Equal(placement))
}

func TestPlacementSpec_NumJobs(t *testing.T) {
	assert.Equal(t, 3, twoProcessorSpec().NumJobs())
	assert.Equal(t, 0, (&PlacementSpec{}).NumJobs())
}

func twoProcessorSpec() *PlacementSpec {
	return &PlacementSpec{
		Name: "two-processors",
		Processors: []*ProcessorSpec{
			{TimeLimit: 10, Jobs: []*JobSpec{job(4, 5), job(5, 9)}},
			{TimeLimit: 10, Jobs: []*JobSpec{job(10, 3)}},
		},
	}
}

func job(executionTime, memoryUsage int) *JobSpec {
	return &JobSpec{ExecutionTime: executionTime, MemoryUsage: memoryUsage}
}

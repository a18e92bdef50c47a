package datacenter

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/armadaproject/datacenter/internal/common/dcerrors"
)

// Processor represents a single machine with a fixed compute-time capacity.
// Jobs are appended in arrival order, which is also the order they execute in, and are never removed.
//
// Invariants:
//   - timeLimit > 0 and never changes.
//   - totalComputationTime is the sum of the execution times of jobs and never exceeds timeLimit.
type Processor struct {
	timeLimit            int
	totalComputationTime int
	jobs                 []Job
}

// NewProcessor returns an empty processor with the given time limit, which must be positive.
func NewProcessor(timeLimit int) (*Processor, error) {
	if timeLimit <= 0 {
		return nil, &dcerrors.ErrInvalidArgument{
			Name:    "timeLimit",
			Value:   timeLimit,
			Message: "must be greater than 0",
		}
	}
	return &Processor{
		timeLimit: timeLimit,
		jobs:      make([]Job, 0),
	}, nil
}

// CanFitJob returns true if adding job would not take the total computation time past the time limit.
func (p *Processor) CanFitJob(job Job) bool {
	// Compared against the remaining time so that very long jobs can't overflow the sum.
	return job.ExecutionTime() <= p.timeLimit-p.totalComputationTime
}

// AddJob appends job to the end of the schedule if it fits, and reports whether it did.
// A rejected job leaves the processor unchanged.
func (p *Processor) AddJob(job Job) bool {
	if !p.CanFitJob(job) {
		return false
	}
	p.jobs = append(p.jobs, job)
	p.totalComputationTime += job.ExecutionTime()
	return true
}

// PeakMemoryUsage returns the largest memory usage of any job on this processor, or 0 if there are none.
func (p *Processor) PeakMemoryUsage() int {
	peak := 0
	for _, job := range p.jobs {
		if job.MemoryUsage() > peak {
			peak = job.MemoryUsage()
		}
	}
	return peak
}

func (p *Processor) TotalComputationTime() int {
	return p.totalComputationTime
}

func (p *Processor) TimeLimit() int {
	return p.timeLimit
}

// RemainingTime returns how much more execution time this processor can accept.
func (p *Processor) RemainingTime() int {
	return p.timeLimit - p.totalComputationTime
}

func (p *Processor) NumJobs() int {
	return len(p.jobs)
}

// ScheduledJobs returns a copy of the jobs on this processor in the order they were added.
func (p *Processor) ScheduledJobs() []Job {
	return slices.Clone(p.jobs)
}

// JobsSortedByExecutionTime returns a copy of the jobs on this processor ordered by ascending execution time.
// Jobs with equal execution times keep their arrival order.
// The schedule itself is not affected.
func (p *Processor) JobsSortedByExecutionTime() []Job {
	rv := slices.Clone(p.jobs)
	slices.SortStableFunc(rv, func(a, b Job) bool {
		return a.ExecutionTime() < b.ExecutionTime()
	})
	return rv
}

// FlowTimes returns the completion time of each job, in arrival order,
// assuming jobs run back-to-back starting at time 0.
func (p *Processor) FlowTimes() []int {
	rv := make([]int, len(p.jobs))
	t := 0
	for i, job := range p.jobs {
		t += job.ExecutionTime()
		rv[i] = t
	}
	return rv
}

// Equal returns true if both processors have the same time limit and exactly the same jobs in the same order.
func (p *Processor) Equal(other *Processor) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if p.timeLimit != other.timeLimit {
		return false
	}
	return slices.EqualFunc(p.jobs, other.jobs, func(a, b Job) bool { return a.Equal(b) })
}

func (p *Processor) String() string {
	return fmt.Sprintf("Processor{timeLimit: %d, totalComputationTime: %d, jobs: %v}", p.timeLimit, p.totalComputationTime, p.jobs)
}

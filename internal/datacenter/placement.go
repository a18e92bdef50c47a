package datacenter

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	dcslices "github.com/armadaproject/datacenter/internal/common/slices"
)

// Placement is a fixed assignment of jobs to an ordered list of processors.
// Processors can only be appended; the order matters for equality but not for any of the metrics.
type Placement struct {
	processors []*Processor
}

func NewPlacement() *Placement {
	return &Placement{
		processors: make([]*Processor, 0),
	}
}

// AddProcessor appends processor to the placement. A nil processor is ignored.
func (pl *Placement) AddProcessor(processor *Processor) {
	if processor == nil {
		return
	}
	pl.processors = append(pl.processors, processor)
}

// Processors returns a copy of the processor list.
func (pl *Placement) Processors() []*Processor {
	return slices.Clone(pl.processors)
}

func (pl *Placement) NumProcessors() int {
	return len(pl.processors)
}

func (pl *Placement) NumJobs() int {
	n := 0
	for _, processor := range pl.processors {
		n += processor.NumJobs()
	}
	return n
}

// TotalCost returns the sum of the peak memory usage of all processors.
func (pl *Placement) TotalCost() int {
	return dcslices.Sum(dcslices.Map(pl.processors, (*Processor).PeakMemoryUsage))
}

// MakeSpan returns the largest total computation time of any processor, or 0 if there is no work.
func (pl *Placement) MakeSpan() int {
	return dcslices.Max(dcslices.Map(pl.processors, (*Processor).TotalComputationTime))
}

// FlowTimes returns the completion time of every job in the placement.
// Each processor runs its jobs in arrival order from time 0, independently of the others.
func (pl *Placement) FlowTimes() []int {
	return dcslices.Flatten(dcslices.Map(pl.processors, (*Processor).FlowTimes))
}

// MeanFlowTime returns the mean completion time over all jobs, or 0 if there are no jobs.
func (pl *Placement) MeanFlowTime() float64 {
	flowTimes := pl.FlowTimes()
	if len(flowTimes) == 0 {
		return 0
	}
	return stat.Mean(dcslices.Map(flowTimes, func(t int) float64 { return float64(t) }), nil)
}

// MedianFlowTime returns the median completion time over all jobs, or 0 if there are no jobs.
// For an even number of jobs it's the mean of the two middle values.
func (pl *Placement) MedianFlowTime() float64 {
	flowTimes := dcslices.Sorted(pl.FlowTimes())
	n := len(flowTimes)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(flowTimes[n/2])
	}
	return float64(flowTimes[n/2-1]+flowTimes[n/2]) / 2
}

// Equal returns true if both placements have the same number of processors
// and the processors at each index are equal.
func (pl *Placement) Equal(other *Placement) bool {
	if pl == other {
		return true
	}
	if pl == nil || other == nil {
		return false
	}
	return slices.EqualFunc(pl.processors, other.processors, (*Processor).Equal)
}

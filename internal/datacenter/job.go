package datacenter

import "fmt"

// Job is an immutable unit of work. It occupies ExecutionTime time units on whichever processor
// holds it and needs MemoryUsage memory at its peak while running.
type Job struct {
	executionTime int
	memoryUsage   int
}

func NewJob(executionTime, memoryUsage int) Job {
	return Job{
		executionTime: executionTime,
		memoryUsage:   memoryUsage,
	}
}

func (j Job) ExecutionTime() int {
	return j.executionTime
}

func (j Job) MemoryUsage() int {
	return j.memoryUsage
}

// Equal returns true if both jobs have the same execution time and memory usage.
func (j Job) Equal(other Job) bool {
	return j.executionTime == other.executionTime && j.memoryUsage == other.memoryUsage
}

func (j Job) String() string {
	return fmt.Sprintf("Job{executionTime: %d, memoryUsage: %d}", j.executionTime, j.memoryUsage)
}

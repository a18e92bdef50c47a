package evaluator

import (
	"fmt"

	"github.com/armadaproject/datacenter/internal/common/util"
	"github.com/armadaproject/datacenter/internal/datacenter"
)

// Result holds the quality metrics of one placement.
type Result struct {
	Name           string
	NumProcessors  int
	NumJobs        int
	TotalCost      int
	MakeSpan       int
	MeanFlowTime   float64
	MedianFlowTime float64
}

func Evaluate(name string, placement *datacenter.Placement) Result {
	return Result{
		Name:           name,
		NumProcessors:  placement.NumProcessors(),
		NumJobs:        placement.NumJobs(),
		TotalCost:      placement.TotalCost(),
		MakeSpan:       placement.MakeSpan(),
		MeanFlowTime:   placement.MeanFlowTime(),
		MedianFlowTime: placement.MedianFlowTime(),
	}
}

func (r Result) String() string {
	return fmt.Sprintf(
		"{Name: %s, NumProcessors: %d, NumJobs: %d, TotalCost: %d, MakeSpan: %d, MeanFlowTime: %.3f, MedianFlowTime: %.3f}",
		r.Name, r.NumProcessors, r.NumJobs, r.TotalCost, r.MakeSpan, r.MeanFlowTime, r.MedianFlowTime,
	)
}

// FormatResults renders results as a table with one row per placement.
func FormatResults(results []Result) string {
	w := util.NewTabbedStringBuilder(1, 1, 2, ' ', 0)
	w.WriteRow("PLACEMENT", "PROCESSORS", "JOBS", "COST", "MAKESPAN", "MEAN FLOW TIME", "MEDIAN FLOW TIME")
	for _, r := range results {
		w.WriteRow(
			r.Name,
			r.NumProcessors,
			r.NumJobs,
			r.TotalCost,
			r.MakeSpan,
			fmt.Sprintf("%.3f", r.MeanFlowTime),
			fmt.Sprintf("%.3f", r.MedianFlowTime),
		)
	}
	return w.String()
}

package evaluator

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	prefix         = "datacenter_placement_"
	placementLabel = "placement"
)

var placementLabels = []string{placementLabel}

// Metrics exposes evaluation results as prometheus metrics, labelled by placement name.
type Metrics struct {
	totalCost      *prometheus.GaugeVec
	makeSpan       *prometheus.GaugeVec
	meanFlowTime   *prometheus.GaugeVec
	medianFlowTime *prometheus.GaugeVec
	processors     *prometheus.GaugeVec
	jobs           *prometheus.GaugeVec
	rejectedJobs   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		totalCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "total_cost",
				Help: "Sum of the peak memory usage of each processor",
			},
			placementLabels,
		),
		makeSpan: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "makespan",
				Help: "Largest total computation time of any processor",
			},
			placementLabels,
		),
		meanFlowTime: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "mean_flow_time",
				Help: "Mean completion time of all jobs",
			},
			placementLabels,
		),
		medianFlowTime: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "median_flow_time",
				Help: "Median completion time of all jobs",
			},
			placementLabels,
		),
		processors: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "processors",
				Help: "Number of processors",
			},
			placementLabels,
		),
		jobs: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "jobs",
				Help: "Number of jobs placed",
			},
			placementLabels,
		),
		rejectedJobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "rejected_jobs_total",
				Help: "Number of assigned jobs that did not fit on their processor",
			},
			placementLabels,
		),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.totalCost,
		m.makeSpan,
		m.meanFlowTime,
		m.medianFlowTime,
		m.processors,
		m.jobs,
		m.rejectedJobs,
	}
}

func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range m.collectors() {
		if err := r.Register(c); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func (m *Metrics) ReportResult(result Result) {
	m.totalCost.WithLabelValues(result.Name).Set(float64(result.TotalCost))
	m.makeSpan.WithLabelValues(result.Name).Set(float64(result.MakeSpan))
	m.meanFlowTime.WithLabelValues(result.Name).Set(result.MeanFlowTime)
	m.medianFlowTime.WithLabelValues(result.Name).Set(result.MedianFlowTime)
	m.processors.WithLabelValues(result.Name).Set(float64(result.NumProcessors))
	m.jobs.WithLabelValues(result.Name).Set(float64(result.NumJobs))
}

func (m *Metrics) ReportRejections(placement string, n int) {
	m.rejectedJobs.WithLabelValues(placement).Add(float64(n))
}

// WriteToTextfile writes everything gathered by g to path in the prometheus text format.
func WriteToTextfile(path string, g prometheus.Gatherer) error {
	return errors.WithStack(prometheus.WriteToTextfile(path, g))
}

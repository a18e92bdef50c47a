package evaluator

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/renstrom/shortuuid"
	"github.com/sirupsen/logrus"

	"github.com/armadaproject/datacenter/internal/common/dcerrors"
	"github.com/armadaproject/datacenter/internal/common/logging"
)

// Evaluator builds placements from specs and computes their metrics.
type Evaluator struct {
	// Optional; no metrics are reported if nil.
	metrics *Metrics
	logger  *logrus.Entry
}

func NewEvaluator(metrics *Metrics, logger *logrus.Entry) *Evaluator {
	return &Evaluator{
		metrics: metrics,
		logger:  logger,
	}
}

// EvaluateSpec builds the placement described by spec and returns its metrics.
func (e *Evaluator) EvaluateSpec(spec *PlacementSpec) (Result, error) {
	logger := e.logger.WithFields(logrus.Fields{
		"runId":     shortuuid.New(),
		"placement": spec.Name,
	})
	placement, err := BuildPlacement(spec)
	if err != nil {
		if rejected := countRejections(err); rejected > 0 && e.metrics != nil {
			e.metrics.ReportRejections(spec.Name, rejected)
		}
		logging.WithStacktrace(logger, err).Warn("Could not build placement")
		return Result{}, err
	}
	result := Evaluate(spec.Name, placement)
	logger.WithFields(logrus.Fields{
		"processors":     result.NumProcessors,
		"jobs":           result.NumJobs,
		"totalCost":      result.TotalCost,
		"makeSpan":       result.MakeSpan,
		"meanFlowTime":   result.MeanFlowTime,
		"medianFlowTime": result.MedianFlowTime,
	}).Info("Evaluated placement")
	if e.metrics != nil {
		e.metrics.ReportResult(result)
	}
	return result, nil
}

// EvaluateSpecs evaluates each spec in turn. Specs that fail don't stop the others from being evaluated;
// the results of those that succeeded are returned together with an error combining all failures.
func (e *Evaluator) EvaluateSpecs(specs []*PlacementSpec) ([]Result, error) {
	results := make([]Result, 0, len(specs))
	var result *multierror.Error
	for _, spec := range specs {
		r, err := e.EvaluateSpec(spec)
		if err != nil {
			result = multierror.Append(result, errors.WithMessagef(err, "failed to evaluate placement %s", spec.Name))
			continue
		}
		results = append(results, r)
	}
	return results, result.ErrorOrNil()
}

func countRejections(err error) int {
	merr, ok := err.(*multierror.Error)
	if !ok {
		if dcerrors.IsJobRejected(err) {
			return 1
		}
		return 0
	}
	n := 0
	for _, err := range merr.Errors {
		if dcerrors.IsJobRejected(err) {
			n++
		}
	}
	return n
}

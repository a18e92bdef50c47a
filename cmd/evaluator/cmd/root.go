package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/armadaproject/datacenter/internal/common"
	commonconfig "github.com/armadaproject/datacenter/internal/common/config"
	"github.com/armadaproject/datacenter/internal/common/logging"
	"github.com/armadaproject/datacenter/internal/evaluator"
)

const (
	CustomConfigLocation string = "config"
	defaultConfigPath    string = "./config/evaluator"
)

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "evaluator",
		SilenceUsage: true,
		Short:        "Compute cost, makespan and flow time statistics of datacenter placements.",
		RunE:         runEvaluation,
	}
	cmd.Flags().StringSlice(
		CustomConfigLocation,
		[]string{},
		"Fully qualified path to application configuration file (for multiple config files repeat this arg or separate paths with commas)")
	cmd.Flags().String("placements", "", "Glob pattern specifying placement specs to evaluate.")
	cmd.Flags().String("metricsFile", "", "Write metrics in the prometheus text format to this file.")
	return cmd
}

func loadConfig(cmd *cobra.Command) (evaluator.Configuration, error) {
	config := evaluator.DefaultConfiguration()
	userSpecifiedConfigs, err := cmd.Flags().GetStringSlice(CustomConfigLocation)
	if err != nil {
		return config, errors.WithStack(err)
	}
	if err := common.LoadConfig(&config, defaultConfigPath, userSpecifiedConfigs, cmd.Flags()); err != nil {
		return config, err
	}
	if err := commonconfig.Validate(config); err != nil {
		commonconfig.LogValidationErrors(err)
		return config, err
	}
	return config, nil
}

func runEvaluation(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.SetLevel(config.Logging.Level)

	specs, err := evaluator.PlacementSpecsFromPattern(config.Placements)
	if err != nil {
		logging.WithStacktrace(log.NewEntry(log.StandardLogger()), err).Error("Failed to load placement specs")
		return err
	}
	if len(specs) == 0 {
		return errors.Errorf("no placement specs match %s", config.Placements)
	}
	log.Infof("Evaluating %d placement(s) matching %s", len(specs), config.Placements)

	registry := prometheus.NewRegistry()
	metrics := evaluator.NewMetrics()
	if err := metrics.Register(registry); err != nil {
		return err
	}

	e := evaluator.NewEvaluator(metrics, log.WithField("component", "evaluator"))
	results, evalErr := e.EvaluateSpecs(specs)
	fmt.Fprint(cmd.OutOrStdout(), evaluator.FormatResults(results))

	if config.MetricsFile != "" {
		if err := evaluator.WriteToTextfile(config.MetricsFile, registry); err != nil {
			return err
		}
		log.Infof("Wrote metrics to %s", config.MetricsFile)
	}
	return evalErr
}

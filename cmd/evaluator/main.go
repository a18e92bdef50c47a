package main

import (
	"os"

	"github.com/armadaproject/datacenter/cmd/evaluator/cmd"
	"github.com/armadaproject/datacenter/internal/common"
)

func main() {
	common.ConfigureLogging()
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

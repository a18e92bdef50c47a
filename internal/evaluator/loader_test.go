package evaluator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoProcessorsYaml = `
processors:
  - timeLimit: 10
    jobs:
      - executionTime: 4
        memoryUsage: 5
      - executionTime: 5
        memoryUsage: 9
  - timeLimit: 10
    jobs:
      - executionTime: 10
        memoryUsage: 3
`

func TestPlacementSpecFromFilePath(t *testing.T) {
	path := writeSpec(t, t.TempDir(), "two-processors.yaml", twoProcessorsYaml)

	spec, err := PlacementSpecFromFilePath(path)
	require.NoError(t, err)

	assert.Equal(t, twoProcessorSpec(), spec)
}

func TestPlacementSpecFromFilePath_ExplicitName(t *testing.T) {
	path := writeSpec(t, t.TempDir(), "spec.json", `{"name": "from-json", "processors": [{"timeLimit": 3, "jobs": [{"executionTime": 1, "memoryUsage": 2}]}]}`)

	spec, err := PlacementSpecFromFilePath(path)
	require.NoError(t, err)

	assert.Equal(t, &PlacementSpec{
		Name:       "from-json",
		Processors: []*ProcessorSpec{{TimeLimit: 3, Jobs: []*JobSpec{job(1, 2)}}},
	}, spec)
}

func TestPlacementSpecFromFilePath_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"missing file":   filepath.Join(dir, "missing.yaml"),
		"malformed yaml": writeSpec(t, dir, "malformed.yaml", "processors: [\n"),
		"wrong types":    writeSpec(t, dir, "types.yaml", "processors:\n  - timeLimit: lots\n"),
	}
	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			spec, err := PlacementSpecFromFilePath(path)
			assert.Nil(t, spec)
			assert.Error(t, err)
		})
	}
}

func TestPlacementSpecsFromPattern(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "b.yaml", "processors:\n  - timeLimit: 2\n")
	writeSpec(t, dir, "a.yaml", twoProcessorsYaml)
	writeSpec(t, dir, "ignored.txt", "not a spec")

	specs, err := PlacementSpecsFromPattern(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)

	require.Len(t, specs, 2)
	assert.Equal(t, "a", specs[0].Name)
	assert.Equal(t, 3, specs[0].NumJobs())
	assert.Equal(t, "b", specs[1].Name)
	assert.Equal(t, []*ProcessorSpec{{TimeLimit: 2}}, specs[1].Processors)
}

func writeSpec(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

package slices

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	toString := func(val int) string { return fmt.Sprintf("%d", val) }
	input := []int{1, 3, 5, 7, 9}
	expectedOutput := []string{"1", "3", "5", "7", "9"}

	output := Map(input, toString)
	assert.Equal(t, expectedOutput, output)
}

func TestMapEmptyList(t *testing.T) {
	toString := func(val int) string { return fmt.Sprintf("%d", val) }
	input := []int{}
	expectedOutput := []string{}

	output := Map(input, toString)
	assert.Equal(t, expectedOutput, output)
}

func TestMapNil(t *testing.T) {
	assert.Nil(t, Map([]int(nil), func(val int) int { return val }))
}

func TestFlatten(t *testing.T) {
	tests := map[string]struct {
		input    [][]int
		expected []int
	}{
		"nil":           {input: nil, expected: nil},
		"all nil":       {input: [][]int{nil, nil}, expected: nil},
		"empty":         {input: [][]int{{}, {}}, expected: []int{}},
		"ordered merge": {input: [][]int{{4, 9}, {}, {10}}, expected: []int{4, 9, 10}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Flatten(tc.input))
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0, Sum([]int(nil)))
	assert.Equal(t, 23, Sum([]int{4, 9, 10}))
	assert.Equal(t, 1.5, Sum([]float64{0.5, 1}))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 0, Max([]int(nil)))
	assert.Equal(t, 10, Max([]int{4, 10, 9}))
	assert.Equal(t, -1, Max([]int{-3, -1, -2}))
}

func TestSorted(t *testing.T) {
	input := []int{10, 4, 9}
	assert.Equal(t, []int{4, 9, 10}, Sorted(input))
	assert.Equal(t, []int{10, 4, 9}, input)
}

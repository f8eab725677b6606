package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputs(t *testing.T) {
	inputs, err := parseInputs(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultInputs, inputs)

	inputs, err = parseInputs([]string{"7", "-2"})
	require.NoError(t, err)
	assert.Equal(t, []int64{7, -2}, inputs)

	_, err = parseInputs([]string{"ten"})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, []int64{5, 2000000}))

	assert.Equal(t, "Testing sumToN(5):\n"+
		"Loop approach: 15\n"+
		"Recursive approach: 15\n"+
		"Math approach: 15\n"+
		"\n"+
		"Testing sumToN(2000000):\n"+
		"Loop approach: 2000001000000\n"+
		"Recursive approach: skipped, depth exceeds 1000000\n"+
		"Math approach: 2000001000000\n", out.String())
}

func TestRun_Overflow(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(&out, []int64{1 << 40}))
}

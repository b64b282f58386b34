package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadsCommand(t *testing.T) {
	path := writeHistory(t, testHistory)

	out, err := runCommand(t, "", "heads", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Heads")
	assert.Contains(t, out, "aaaa111")
	assert.NotContains(t, out, "cccc333")
}

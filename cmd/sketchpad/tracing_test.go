package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracingVerbose(t *testing.T) {
	defer trace2go.Teardown()
	require.NoError(t, setupTracing(true))
	for _, key := range traceKeys {
		tr := tracing.Select(key)
		assert.Equal(t, tracing.LevelDebug, tr.GetTraceLevel(), "tracer %s", key)
		assert.Same(t, tr, tracing.Select(key), "tracer %s must be selected once", key)
	}
}

func TestSetupTracingQuiet(t *testing.T) {
	defer trace2go.Teardown()
	require.NoError(t, setupTracing(true))
	require.NoError(t, setupTracing(false))
	assert.Equal(t, tracing.LevelError, tracing.Select("sketchpad.spline").GetTraceLevel())
	assert.Equal(t, tracing.LevelError, tracing.Select("sketchpad").GetTraceLevel())
}

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	shutdown, err := Init(context.Background(), "reelfetch")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSampleRate(t *testing.T) {
	t.Setenv("OTEL_TRACE_SAMPLE_RATE", "0.5")
	assert.Equal(t, 0.5, sampleRate())
	t.Setenv("OTEL_TRACE_SAMPLE_RATE", "7")
	assert.Equal(t, 0.1, sampleRate())
}

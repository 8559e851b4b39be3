package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer_EmptyCollectorIsNoop(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), ServiceName, "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	_, span := GetTracer(ServiceName).Start(context.Background(), "test")
	span.SetAttributes(String("k", "v"), Int("n", 1), Bool("b", true))
	span.End()
}

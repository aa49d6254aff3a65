package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func TestInitTracer(t *testing.T) {
	shutdown, err := InitTracer("shipment-tracker-test", zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, span := otel.Tracer("test").Start(context.Background(), "lookup")
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

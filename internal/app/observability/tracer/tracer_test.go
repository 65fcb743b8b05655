package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func TestInitOtelProviders_WithoutExporters(t *testing.T) {
	shutdown, err := InitOtelProviders(Options{ServiceName: "tracer-test", Logger: zap.NewNop()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	_, span := otel.Tracer("tracer-test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()
}

func TestNewSpanExporter(t *testing.T) {
	exp, err := newSpanExporter(Options{})
	require.NoError(t, err)
	assert.Nil(t, exp)

	exp, err = newSpanExporter(Options{StdoutTraces: true})
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.NoError(t, exp.Shutdown(context.Background()))

	exp, err = newSpanExporter(Options{OTLPEndpoint: "localhost:4318", StdoutTraces: true})
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.NoError(t, exp.Shutdown(context.Background()))
}

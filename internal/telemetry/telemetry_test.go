package telemetry_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNoopTracer(t *testing.T) {
	_, span := telemetry.NoopTracer().Start(context.Background(), "encounter.NextTurn")
	defer span.End()

	assert.False(t, span.IsRecording())
	assert.False(t, span.SpanContext().IsValid())
}

func TestTracer_UsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, span := telemetry.Tracer("encounter").Start(context.Background(), "encounter.NextTurn")
	span.End()

	ended := recorder.Ended()
	if assert.Len(t, ended, 1) {
		assert.Equal(t, "encounter.NextTurn", ended[0].Name())
		assert.Equal(t, "combat-tracker/encounter", ended[0].InstrumentationScope().Name)
	}
}

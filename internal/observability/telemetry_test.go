package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInstallProvider_RecordsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	recorder := tracetest.NewSpanRecorder()
	shutdown, err := installProvider(context.Background(), "noisefield-test", sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "tiles.render")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tiles.render", spans[0].Name())
	assert.Equal(t, TracerName, spans[0].InstrumentationScope().Name)

	require.NoError(t, shutdown(context.Background()))
}

package tracing

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"gppgateway/pkg/testutil"
)

func TestParseOTLPEndpoint(t *testing.T) {
	cases := map[string]string{
		"collector:4318":           "collector:4318",
		"http://collector:4318":    "collector:4318",
		"https://otel.example.com": "otel.example.com:4318",
	}
	for in, want := range cases {
		got, err := parseOTLPEndpoint(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestInitWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), "gpp-gateway", "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestMiddlewareNamesSpanAfterRoute(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/unicorn", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/v1/unicorn"))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/unicorn", spans[0].Name())
}

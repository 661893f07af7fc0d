package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gppgateway/internal/eforms"
	noticehandler "gppgateway/internal/notice/handler"
	"gppgateway/internal/notice/service"
	"gppgateway/internal/notice/store"
	"gppgateway/internal/platform/config"
	"gppgateway/internal/platform/metrics"
	"gppgateway/internal/platform/middleware"
	"gppgateway/internal/ted"
	tedhandler "gppgateway/internal/ted/handler"
	"gppgateway/pkg/testutil"
)

type healthFunc func(ctx context.Context) error

func (f healthFunc) Health(ctx context.Context) error { return f(ctx) }

func newTestRouter(t *testing.T, tedURL string, health HealthChecker) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	facade := service.New(eforms.NewAnalyzer(), store.NewInMemory(), service.WithLogger(logger))
	client := ted.New(tedURL, "test-key", ted.WithLogger(logger))

	return NewRouter(Deps{
		Logger:   logger,
		Metrics:  metrics.New(reg),
		Gatherer: reg,
		CORS: config.CORS{
			AllowedOrigins: []string{"https://app.example"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"*"},
		},
		MaxBodyBytes: 64 << 10,
		Health:       health,
	},
		noticehandler.New(facade, logger),
		tedhandler.New(client, facade, logger),
	)
}

func fixture(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("../../eforms/testdata/contract_notice.xml")
	require.NoError(t, err)
	return string(raw)
}

func TestRouterOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t, "http://127.0.0.1:0", nil)

	t.Run("health", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONField(t, rr, "status", "ok")
	})

	t.Run("metrics", func(t *testing.T) {
		testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/unicorn"))
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
		testutil.AssertStatusOK(t, rr)
		assert.Contains(t, rr.Body.String(), `gpp_http_requests_total{method="GET",route="/api/v1/unicorn",status="200"} 1`)
	})

	t.Run("request id is generated and echoed", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/unicorn"))
		assert.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))

		req := testutil.NewRequest(t, http.MethodGet, "/api/v1/unicorn")
		req.Header.Set(middleware.HeaderRequestID, "req-42")
		rr = testutil.DoRequest(router, req)
		assert.Equal(t, "req-42", rr.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodOptions, "/api/v1/analyze-notice")
		req.Header.Set("Origin", "https://app.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouterHealthReportsDependencyFailure(t *testing.T) {
	router := newTestRouter(t, "http://127.0.0.1:0", healthFunc(func(context.Context) error {
		return errors.New("redis down")
	}))
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestRouterBodyLimit(t *testing.T) {
	router := newTestRouter(t, "http://127.0.0.1:0", nil)
	huge := "<ContractNotice>" + strings.Repeat("x", 128<<10) + "</ContractNotice>"

	t.Run("raw notice body", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewXMLRequest(t, http.MethodPost, "/api/v1/analyze-notice", huge))
		env := testutil.AssertStatusAndError(t, rr, http.StatusRequestEntityTooLarge, "payload_too_large")
		assert.Equal(t, "request body exceeds 65536 bytes", env.Description)
	})

	t.Run("json body", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/visualize-notice",
			tedhandler.VisualizeRequest{NoticeXML: huge})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusRequestEntityTooLarge, "payload_too_large")
	})

	t.Run("malformed json under the limit stays a bad request", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRawJSONRequest(t, http.MethodPost, "/api/v1/visualize-notice", `{"noticeXml":`))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}

func TestRouterVisualizeEndToEnd(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid key"}`))
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>rendered</html>"))
	}))
	t.Cleanup(remote.Close)
	router := newTestRouter(t, remote.URL, nil)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/visualize-notice",
		tedhandler.VisualizeRequest{NoticeXML: fixture(t)})
	rr := testutil.DoRequest(router, req)

	testutil.AssertProxyOutcome(t, rr, "visualizationStatus", http.StatusOK, "Visualization completed successfully")
	resp := testutil.UnmarshalResponse[tedhandler.VisualizeResponse](t, rr)
	require.NotNil(t, resp.HTML)
	assert.Equal(t, "<html>rendered</html>", *resp.HTML)
}

func TestRouterValidateRejectsMalformedNotice(t *testing.T) {
	router := newTestRouter(t, "http://127.0.0.1:0", nil)
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/validate-notice",
		tedhandler.ValidateRequest{NoticeXML: "<Invoice/>"})
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
}

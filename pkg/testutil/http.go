// Package testutil is the HTTP test kit for the gateway's handlers: request
// builders for the JSON and raw XML endpoints and assertions for the error
// envelope and the proxy outcome bodies.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorEnvelope is the body httputil.WriteError produces.
type ErrorEnvelope struct {
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// NewRequest builds a request without a body.
func NewRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

// NewJSONRequest marshals body and sends it as application/json.
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err, "marshal request body")
	return newBodyRequest(method, path, "application/json", raw)
}

// NewRawJSONRequest sends body untouched as application/json, for malformed
// payloads.
func NewRawJSONRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	return newBodyRequest(method, path, "application/json", []byte(body))
}

// NewXMLRequest sends a notice document as the raw request body.
func NewXMLRequest(t *testing.T, method, path, notice string) *http.Request {
	t.Helper()
	return newBodyRequest(method, path, "application/xml", []byte(notice))
}

func newBodyRequest(method, path, contentType string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return req
}

// DoRequest serves req on handler and returns the recorded response.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// UnmarshalResponse decodes the JSON body into T without consuming the
// recorder, so several assertions can read the same response.
func UnmarshalResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "decode response body: %s", rr.Body.String())
	return &out
}

// DecodeError reads the error envelope.
func DecodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json"),
		"error responses are JSON, got %q", rr.Header().Get("Content-Type"))
	return *UnmarshalResponse[ErrorEnvelope](t, rr)
}

func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, rr.Code, "unexpected status, body: %s", rr.Body.String())
}

func AssertStatusOK(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	AssertStatus(t, rr, http.StatusOK)
}

// AssertStatusAndError checks the HTTP status and the envelope's error code.
// It returns the envelope for description checks.
func AssertStatusAndError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) ErrorEnvelope {
	t.Helper()
	AssertStatus(t, rr, status)
	env := DecodeError(t, rr)
	assert.Equal(t, code, env.Code, "unexpected error code")
	return env
}

// AssertJSONField checks one top-level field of a JSON object body. Numbers
// decode as float64 and arrays as []any.
func AssertJSONField(t *testing.T, rr *httptest.ResponseRecorder, key string, expected any) {
	t.Helper()
	fields := *UnmarshalResponse[map[string]any](t, rr)
	assert.Equal(t, expected, fields[key], "unexpected value for %q", key)
}

// AssertJSONNull checks that key is present with an explicit null.
func AssertJSONNull(t *testing.T, rr *httptest.ResponseRecorder, key string) {
	t.Helper()
	fields := *UnmarshalResponse[map[string]any](t, rr)
	value, ok := fields[key]
	assert.True(t, ok, "%q missing from body", key)
	assert.Nil(t, value, "%q should be null", key)
}

// AssertProxyOutcome checks a visualize or validate body: the call itself is
// always 200 and the remote outcome travels in summary and statusField.
func AssertProxyOutcome(t *testing.T, rr *httptest.ResponseRecorder, statusField string, remoteStatus int, summary string) {
	t.Helper()
	AssertStatusOK(t, rr)
	fields := *UnmarshalResponse[map[string]any](t, rr)
	assert.Equal(t, summary, fields["summary"])
	assert.Equal(t, float64(remoteStatus), fields[statusField], "unexpected %s", statusField)
}

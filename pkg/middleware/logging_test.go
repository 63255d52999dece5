package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/engmath/mathtools/pkg/logging"
)

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.DEBUG, false)
	logger.SetOutput(&buf)

	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusTeapot)
	}

	logged := buf.String()
	if !strings.Contains(logged, "/healthz") {
		t.Errorf("Log entry missing path: %q", logged)
	}
	if !strings.Contains(logged, "418") {
		t.Errorf("Log entry missing status: %q", logged)
	}
}

func TestRequestLoggingDefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.DEBUG, false)
	logger.SetOutput(&buf)

	handler := RequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if !strings.Contains(buf.String(), "200") {
		t.Errorf("Expected implicit 200 in log entry: %q", buf.String())
	}
}

package httpclient

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TestLoggingRoundTripper verifies that requests are logged.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := New(Options{Timeout: time.Second})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are logged.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := New(Options{Timeout: time.Second})
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestNew_Proxy verifies that requests go through the configured proxy.
func TestNew_Proxy(t *testing.T) {
	var proxied bool
	proxyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = true
		assert.Equal(t, "tracking.test", r.URL.Host)
		w.WriteHeader(http.StatusTeapot)
	}))
	defer proxyServer.Close()

	addr := proxyServer.Listener.Addr().String()
	host, port := splitHostPort(t, addr)

	client := New(Options{
		Timeout: time.Second,
		Proxy:   proxy.Settings{Enabled: true, Hostname: host, Port: port},
	})

	resp, err := client.Get("http://tracking.test/shipments/track/1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.True(t, proxied)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

// TestNew_Tracing verifies that tracing wraps the logging transport.
func TestNew_Tracing(t *testing.T) {
	client := New(Options{Timeout: time.Second, Tracing: true})
	_, ok := client.Transport.(*otelhttp.Transport)
	assert.True(t, ok)

	client = New(Options{Timeout: time.Second})
	_, ok = client.Transport.(*LoggingRoundTripper)
	assert.True(t, ok)
}

func splitHostPort(t *testing.T, addr string) (string, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return host, port
}

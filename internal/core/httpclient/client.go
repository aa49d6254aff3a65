package httpclient

import (
	"net/http"
	"time"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/proxy"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// Options configures the outbound client.
type Options struct {
	// Timeout bounds the whole request including reading the body.
	Timeout time.Duration
	// Proxy routes requests through an HTTP proxy when configured.
	Proxy proxy.Settings
	// Tracing wraps the transport with OpenTelemetry instrumentation.
	Tracing bool
}

// New returns an http.Client with logging middleware, optional proxy and tracing.
func New(opts Options) *http.Client {
	base := http.DefaultTransport
	if u := opts.Proxy.URL(); u != nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.Proxy = http.ProxyURL(u)
		base = t
		logger.Get().Debug("Outbound proxy configured", zap.String("proxy", opts.Proxy.HostPort()))
	}

	var rt http.RoundTripper = &LoggingRoundTripper{Proxied: base}
	if opts.Tracing {
		rt = otelhttp.NewTransport(rt)
	}

	return &http.Client{
		Transport: rt,
		Timeout:   opts.Timeout,
	}
}

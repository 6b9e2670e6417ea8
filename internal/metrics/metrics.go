package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	RefreshOK       = "ok"
	RefreshDegraded = "degraded"
	RefreshFailed   = "failed"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devdash_upstream_requests_total",
			Help: "Upstream API requests by provider and status code",
		},
		[]string{"provider", "status"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "devdash_upstream_request_duration_seconds",
			Help:    "Duration of upstream API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	refreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devdash_refreshes_total",
			Help: "Dashboard refresh cycles by result",
		},
		[]string{"result"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRefresh(result string) {
	refreshes.WithLabelValues(result).Inc()
}

func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	requestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
	requestTotal.WithLabelValues(method, path, code).Inc()
}

type transport struct {
	provider string
	next     http.RoundTripper
}

// InstrumentTransport records count and latency of every upstream request
// made through rt. Transport errors are counted with status "error".
func InstrumentTransport(provider string, rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &transport{provider: provider, next: rt}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	upstreamDuration.WithLabelValues(t.provider).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	upstreamRequests.WithLabelValues(t.provider, status).Inc()

	return resp, err
}

package api

import (
	"net/http"
	"permit-portal/internal/database"
	"permit-portal/internal/storage"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// StoreCollector reports the size of the in-memory collections at scrape time.
type StoreCollector struct {
	store   *database.Store
	storage *storage.MemoryStorage

	users    *prometheus.Desc
	projects *prometheus.Desc
	files    *prometheus.Desc
	objects  *prometheus.Desc
	bytes    *prometheus.Desc
}

func NewStoreCollector(store *database.Store, storage *storage.MemoryStorage) *StoreCollector {
	return &StoreCollector{
		store:    store,
		storage:  storage,
		users:    prometheus.NewDesc("permit_users", "Registered users.", nil, nil),
		projects: prometheus.NewDesc("permit_projects", "Stored projects.", nil, nil),
		files:    prometheus.NewDesc("permit_files", "Stored file records.", nil, nil),
		objects:  prometheus.NewDesc("permit_storage_objects", "Objects held in byte storage.", nil, nil),
		bytes:    prometheus.NewDesc("permit_storage_bytes", "Bytes held in byte storage.", nil, nil),
	}
}

func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.users
	ch <- c.projects
	ch <- c.files
	ch <- c.objects
	ch <- c.bytes
}

func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	objects, bytes := c.storage.Stats()
	ch <- prometheus.MustNewConstMetric(c.users, prometheus.GaugeValue, float64(c.store.Users.Count()))
	ch <- prometheus.MustNewConstMetric(c.projects, prometheus.GaugeValue, float64(c.store.Projects.Count()))
	ch <- prometheus.MustNewConstMetric(c.files, prometheus.GaugeValue, float64(c.store.Files.Count()))
	ch <- prometheus.MustNewConstMetric(c.objects, prometheus.GaugeValue, float64(objects))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(bytes))
}

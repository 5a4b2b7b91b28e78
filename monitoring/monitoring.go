package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	UsersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "users_created_total",
		Help: "Total users created",
	})

	UsersDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "users_deleted_total",
		Help: "Total users deleted",
	})

	PostsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_created_total",
		Help: "Total posts created",
	})

	PostsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_deleted_total",
		Help: "Total posts deleted",
	})

	TagsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tags_created_total",
		Help: "Total tags created",
	})

	TagsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tags_deleted_total",
		Help: "Total tags deleted",
	})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(UsersCreated)
	prometheus.MustRegister(UsersDeleted)
	prometheus.MustRegister(PostsCreated)
	prometheus.MustRegister(PostsDeleted)
	prometheus.MustRegister(TagsCreated)
	prometheus.MustRegister(TagsDeleted)
}

// Middleware to track request timing and status code
type statusRecordingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecordingWriter{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		route := r.URL.Path
		method := r.Method
		status := fmt.Sprintf("%d", rw.statusCode)

		RequestDuration.WithLabelValues(method, route, status).Observe(duration)
		logrus.WithFields(logrus.Fields{
			"method":   method,
			"route":    route,
			"status":   rw.statusCode,
			"duration": duration,
		}).Debug("request handled")
	})
}

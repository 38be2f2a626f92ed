package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/passgen/passgen-go/internal/crypto"
)

var (
	PasswordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_passwords_generated_total",
			Help: "Total number of generated passwords by enabled character classes and shell",
		},
		[]string{"digits", "symbols", "shell"},
	)

	PasswordLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "passgen_password_length",
			Help:    "Length of generated passwords",
			Buckets: []float64{6, 8, 12, 16, 24, 32, 64, 101, 256},
		},
	)

	GenerateErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_generate_errors_total",
			Help: "Total number of rejected or failed generation requests by reason",
		},
		[]string{"reason"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "passgen_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passgen_http_requests_total",
			Help: "Total number of HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)
)

// ObserveGenerated records a successfully generated password.
func ObserveGenerated(shell string, cfg crypto.GenerationConfig) {
	PasswordsGenerated.WithLabelValues(
		strconv.FormatBool(cfg.IncludeDigits),
		strconv.FormatBool(cfg.IncludeSymbols),
		shell,
	).Inc()
	PasswordLength.Observe(float64(cfg.Length))
}

// ObserveError records a failed generation.
func ObserveError(reason string) {
	GenerateErrors.WithLabelValues(reason).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

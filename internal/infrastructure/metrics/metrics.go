// Package metrics exposes Prometheus collectors for the escrow service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "escrow_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "escrow_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"method", "route"})

	escrowTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "escrow_state_transitions_total",
		Help: "Project escrow state transitions persisted",
	}, []string{"from", "to"})

	depositTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "escrow_deposit_transitions_total",
		Help: "Estimate deposit status transitions persisted",
	}, []string{"from", "to"})

	disputeResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "escrow_dispute_resolutions_total",
		Help: "Dispute resolutions by result",
	}, []string{"outcome", "result"})

	settledCents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "escrow_settled_cents_total",
		Help: "Cents handed to the settlement executor",
	}, []string{"side"})
)

func ObserveTransition(from, to string) {
	escrowTransitions.WithLabelValues(from, to).Inc()
}

func ObserveDepositTransition(from, to string) {
	depositTransitions.WithLabelValues(from, to).Inc()
}

// ObserveResolution counts a dispute resolution attempt; result is "applied" or "conflict".
func ObserveResolution(outcome, result string) {
	disputeResolutions.WithLabelValues(outcome, result).Inc()
}

// ObserveSettlement adds the amounts of a recorded settlement per side.
func ObserveSettlement(contractorCents, feeCents, customerCents int64) {
	settledCents.WithLabelValues("contractor").Add(float64(contractorCents))
	settledCents.WithLabelValues("platform_fee").Add(float64(feeCents))
	settledCents.WithLabelValues("customer").Add(float64(customerCents))
}

// GinMiddleware records request count and latency by matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		httpReqTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

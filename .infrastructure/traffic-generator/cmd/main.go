package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики генератора: сколько запросов отправлено и с каким ответом.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Количество запросов к tms",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса к tms в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"route"})
)

type scenario struct {
	route  string
	method string
	path   func(r *rand.Rand) string
	body   string
}

var scenarios = []scenario{
	{
		route:  "/order-groups",
		method: http.MethodGet,
		path: func(r *rand.Rand) string {
			statuses := []string{"APPROVED", "IN_STOCK", "IN_PROGRESS", "DELIVERED"}
			return fmt.Sprintf("/order-groups?status=%s&page=%d", statuses[r.Intn(len(statuses))], 1+r.Intn(3))
		},
	},
	{
		route:  "/order-groups/counts",
		method: http.MethodGet,
		path:   func(*rand.Rand) string { return "/order-groups/counts" },
	},
	{
		route:  "/order-groups/{id}",
		method: http.MethodGet,
		path:   func(r *rand.Rand) string { return fmt.Sprintf("/order-groups/%d", 1+r.Intn(50)) },
	},
	{
		route:  "/order-groups/{id}/notifications",
		method: http.MethodPost,
		path:   func(r *rand.Rand) string { return fmt.Sprintf("/order-groups/%d/notifications", 1+r.Intn(50)) },
		body:   `{"fullName":"Traffic Generator"}`,
	},
}

func main() {
	target := flag.String("target", "http://localhost:8080", "адрес tms")
	organizationID := flag.Int64("org", 1, "X-Organization-ID")
	interval := flag.Duration("interval", time.Second, "пауза между запросами")
	metricsAddr := flag.String("metrics", ":2112", "адрес /metrics генератора")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		server := &http.Server{Addr: *metricsAddr, ReadHeaderTimeout: 5 * time.Second}
		if err := server.ListenAndServe(); err != nil {
			stdlog.Fatalf("metrics server: %v", err)
		}
	}()

	client := &http.Client{Timeout: 10 * time.Second}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // нагрузочный генератор

	for {
		s := scenarios[rnd.Intn(len(scenarios))]
		send(client, *target, *organizationID, s, rnd)
		time.Sleep(*interval)
	}
}

func send(client *http.Client, target string, organizationID int64, s scenario, rnd *rand.Rand) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(s.route).Observe(time.Since(start).Seconds())
	}()

	var body io.Reader
	if s.body != "" {
		body = bytes.NewBufferString(s.body)
	}

	req, err := http.NewRequest(s.method, target+s.path(rnd), body)
	if err != nil {
		stdlog.Printf("build request: %v", err)
		return
	}
	req.Header.Set("X-Organization-ID", fmt.Sprintf("%d", organizationID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(s.route, "error").Inc()
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	requestsTotal.WithLabelValues(s.route, fmt.Sprintf("%d", resp.StatusCode)).Inc()
}

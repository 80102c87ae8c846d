// Package ratesmock serves a mock OpenExchangeRates endpoint: a fixed
// USD-base currency table with independent per-currency jitter on every
// request and no state between requests.
package ratesmock

import (
	"encoding/json"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/synthwatch/telegen/common/logging"
)

// maxVariation bounds the per-request jitter applied to each base rate.
const maxVariation = 0.02

// baseRates is the fixed USD-base exchange table.
var baseRates = map[string]float64{
	"AED": 3.673,
	"AUD": 1.532,
	"CAD": 1.393,
	"CHF": 0.884,
	"CNY": 7.245,
	"EUR": 0.925,
	"GBP": 0.790,
	"HKD": 7.773,
	"INR": 83.42,
	"JPY": 149.83,
	"KRW": 1383.50,
	"MXN": 17.08,
	"NOK": 10.89,
	"NZD": 1.677,
	"RUB": 92.50,
	"SEK": 10.76,
	"SGD": 1.344,
	"TRY": 34.15,
	"USD": 1.0,
	"ZAR": 18.23,
}

// LatestResponse mirrors the OpenExchangeRates latest.json schema.
type LatestResponse struct {
	Disclaimer string             `json:"disclaimer"`
	License    string             `json:"license"`
	Timestamp  int64              `json:"timestamp"`
	Base       string             `json:"base"`
	Rates      map[string]float64 `json:"rates"`
}

// Server handles rate requests. The rand source is guarded because the
// HTTP server calls handlers concurrently.
type Server struct {
	mu  sync.Mutex
	rng *rand.Rand
	log *logging.Logger
}

// NewServer returns a rate stub drawing jitter from the given source.
func NewServer(rng *rand.Rand, log *logging.Logger) *Server {
	return &Server{rng: rng, log: log}
}

// NewRouter constructs a ServeMux with the stub API routes registered.
func NewRouter(s *Server) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/latest.json", s.HandleLatest)
	mux.HandleFunc("/health", s.Health)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// HandleLatest serves the jittered rate table.
func (s *Server) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		requestsTotal.WithLabelValues("latest", "error").Inc()
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if auth := r.Header.Get("Authorization"); auth != "" {
		if len(auth) > 20 {
			auth = auth[:20]
		}
		s.log.Debug("request with auth header", "auth_prefix", auth)
	}

	resp := LatestResponse{
		Disclaimer: "Mock data for development - Usage subject to terms: https://openexchangerates.org/terms",
		License:    "Mock License",
		Timestamp:  time.Now().Unix(),
		Base:       "USD",
		Rates:      s.currentRates(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("failed to encode rates response", logging.Error(err))
		return
	}

	requestsTotal.WithLabelValues("latest", "ok").Inc()
	s.log.Debug("served exchange rates", logging.Count(len(resp.Rates)))
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// currentRates applies independent jitter to every base rate. Each
// request gets fresh draws; nothing carries over.
func (s *Server) currentRates() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	rates := make(map[string]float64, len(baseRates))
	for currency, rate := range baseRates {
		variation := (s.rng.Float64()*2 - 1) * maxVariation
		rates[currency] = math.Round(rate*(1+variation)*1e6) / 1e6
	}
	return rates
}

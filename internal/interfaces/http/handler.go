package httpinterface

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/application"
	"github.com/vivcrypto/viv-smart-contracts/internal/core/domain"
	"github.com/vivcrypto/viv-smart-contracts/pkg/mathutil"
	"github.com/vivcrypto/viv-smart-contracts/pkg/signutil"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "viv_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "viv_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "endpoint"})
)

type Handler struct {
	svc application.SettlementService
}

func NewHandler(svc application.SettlementService) *Handler {
	return &Handler{svc: svc}
}

// Router wires all endpoints, the health check and the metrics exporter.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/trades", h.CreateTrade).Methods("POST")
	v1.HandleFunc("/trades", h.ListTrades).Methods("GET")
	v1.HandleFunc("/trades/{tid}", h.GetTrade).Methods("GET")
	v1.HandleFunc("/trades/{tid}/withdrawals", h.CreateWithdrawal).Methods("POST")
	v1.HandleFunc("/trades/{tid}/withdrawals", h.ListWithdrawals).Methods("GET")
	return r
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("POST", "/trades"))
	defer timer.ObserveDuration()

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "malformed JSON body", "POST", "/trades")
		return
	}

	params, err := req.toParams()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "POST", "/trades")
		return
	}

	trade, err := h.svc.Purchase(r.Context(), params)
	if err != nil {
		h.respondDomainError(w, err, "POST", "/trades")
		return
	}

	httpRequestsTotal.WithLabelValues("POST", "/trades", "201").Inc()
	respondWithJSON(w, http.StatusCreated, newTradeResponse(trade))
}

func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(
		httpRequestDuration.WithLabelValues("POST", "/trades/{tid}/withdrawals"),
	)
	defer timer.ObserveDuration()

	tid, err := hex.DecodeString(mux.Vars(r)["tid"])
	if err != nil {
		h.respondError(
			w, http.StatusBadRequest, "invalid tid",
			"POST", "/trades/{tid}/withdrawals",
		)
		return
	}

	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(
			w, http.StatusBadRequest, "malformed JSON body",
			"POST", "/trades/{tid}/withdrawals",
		)
		return
	}

	params, err := req.toParams(tid)
	if err != nil {
		h.respondError(
			w, http.StatusBadRequest, err.Error(),
			"POST", "/trades/{tid}/withdrawals",
		)
		return
	}

	payout, err := h.svc.Withdraw(r.Context(), params)
	if err != nil {
		h.respondDomainError(w, err, "POST", "/trades/{tid}/withdrawals")
		return
	}

	httpRequestsTotal.WithLabelValues("POST", "/trades/{tid}/withdrawals", "200").Inc()
	respondWithJSON(w, http.StatusOK, newPayoutResponse(payout))
}

func (h *Handler) GetTrade(w http.ResponseWriter, r *http.Request) {
	tid, err := hex.DecodeString(mux.Vars(r)["tid"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid tid", "GET", "/trades/{tid}")
		return
	}

	trade, err := h.svc.GetTrade(r.Context(), tid)
	if err != nil {
		h.respondDomainError(w, err, "GET", "/trades/{tid}")
		return
	}

	httpRequestsTotal.WithLabelValues("GET", "/trades/{tid}", "200").Inc()
	respondWithJSON(w, http.StatusOK, newTradeResponse(trade))
}

func (h *Handler) ListTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.svc.ListTrades(r.Context())
	if err != nil {
		h.respondDomainError(w, err, "GET", "/trades")
		return
	}

	list := make([]tradeResponse, 0, len(trades))
	for _, t := range trades {
		list = append(list, newTradeResponse(t))
	}

	httpRequestsTotal.WithLabelValues("GET", "/trades", "200").Inc()
	respondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	tid, err := hex.DecodeString(mux.Vars(r)["tid"])
	if err != nil {
		h.respondError(
			w, http.StatusBadRequest, "invalid tid",
			"GET", "/trades/{tid}/withdrawals",
		)
		return
	}

	withdrawals, err := h.svc.ListWithdrawals(r.Context(), tid)
	if err != nil {
		h.respondDomainError(w, err, "GET", "/trades/{tid}/withdrawals")
		return
	}

	list := make([]withdrawalResponse, 0, len(withdrawals))
	for _, wd := range withdrawals {
		list = append(list, newWithdrawalResponse(wd))
	}

	httpRequestsTotal.WithLabelValues("GET", "/trades/{tid}/withdrawals", "200").Inc()
	respondWithJSON(w, http.StatusOK, list)
}

// respondDomainError maps service errors onto HTTP status codes.
func (h *Handler) respondDomainError(
	w http.ResponseWriter, err error, method, endpoint string,
) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrTradeNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrTradeAlreadyExists),
		errors.Is(err, domain.ErrCouponAlreadyUsed):
		code = http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorizedCaller),
		errors.Is(err, domain.ErrQuorumNotMet),
		errors.Is(err, domain.ErrInvalidCouponSignature):
		code = http.StatusForbidden
	case errors.Is(err, signutil.ErrMalformedSignature):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidSeller),
		errors.Is(err, domain.ErrInvalidBuyer),
		errors.Is(err, domain.ErrInvalidGuarantor),
		errors.Is(err, domain.ErrInvalidPlatform),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidFeeRate),
		errors.Is(err, domain.ErrInvalidTid),
		errors.Is(err, domain.ErrPaymentMismatch),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientAllowance),
		errors.Is(err, domain.ErrInsufficientRemaining),
		errors.Is(err, mathutil.ErrUnderflow),
		errors.Is(err, mathutil.ErrOverflow):
		code = http.StatusUnprocessableEntity
	}
	h.respondError(w, code, err.Error(), method, endpoint)
}

func (h *Handler) respondError(
	w http.ResponseWriter, code int, message, method, endpoint string,
) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(code)).Inc()
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

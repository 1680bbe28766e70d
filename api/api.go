// Package api exposes the calculators as a JSON over HTTP service.
//
// Every successful response wraps the calculation result with a unique id:
//
//	{"calculationId": "0b7e...", "result": {...}}
//
// Errors are reported as {"status": 400, "message": "..."}.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/joechiboo/homecalc"
	"github.com/joechiboo/homecalc/plan"
	"go.uber.org/zap"
)

// ErrUnrepresentable is returned when a result overflows the JSON numbers,
// typically a projection growing beyond float64.
var ErrUnrepresentable = errors.New("result is too large to be represented")

// maxBodySize bounds the size of plans posted to the API.
const maxBodySize = 1 << 20

// Response is the envelope of every calculation result.
type Response struct {
	CalculationID string `json:"calculationId"`
	Result        any    `json:"result"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler serves the calculators.
type Handler struct {
	Logger *zap.Logger
}

// NewRouter returns the routes of the API, with their middlewares.
func NewRouter(logger *zap.Logger) http.Handler {
	h := Handler{Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/funds", h.Funds)
	r.Get("/funds/{code}", h.Fund)
	r.Post("/valuation", h.Valuation)
	r.Post("/projection", h.Projection)
	r.Post("/portfolio/projection", h.PortfolioProjection)
	r.Post("/mortgage", h.Mortgage)
	r.Post("/mortgage/compare", h.Compare)

	return r
}

func (h Handler) Funds(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, homecalc.Funds())
}

func (h Handler) Fund(w http.ResponseWriter, r *http.Request) {
	fund, err := homecalc.LookupFund(chi.URLParam(r, "code"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, fund)
}

func (h Handler) Valuation(w http.ResponseWriter, r *http.Request) {
	holdings, err := plan.DecodeValuation(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := homecalc.PortfolioValue(holdings)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, v)
}

func (h Handler) Projection(w http.ResponseWriter, r *http.Request) {
	params, err := plan.DecodeProjection(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, homecalc.Project(params))
}

func (h Handler) PortfolioProjection(w http.ResponseWriter, r *http.Request) {
	params, err := plan.DecodePortfolio(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := homecalc.ProjectPortfolio(params)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, p)
}

// Mortgage computes a loan. The optional "periods" query parameter replaces
// the first periods of the schedule with that many periods.
func (h Handler) Mortgage(w http.ResponseWriter, r *http.Request) {
	loan, err := plan.DecodeLoan(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := homecalc.Mortgage(loan)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if q := r.URL.Query().Get("periods"); q != "" {
		periods, err := strconv.Atoi(q)
		if err != nil || periods < 1 || periods > plan.MaxMonths {
			h.fail(w, r, fmt.Errorf("%w: periods: must be an integer between 1 and %d, got %q", plan.ErrInvalid, plan.MaxMonths, q))
			return
		}
		res.Schedule = homecalc.PaymentSchedule(loan.Principal, loan.AnnualRate, loan.MonthlyPayment, periods)
	}
	h.respond(w, r, res)
}

func (h Handler) Compare(w http.ResponseWriter, r *http.Request) {
	c, err := plan.DecodeComparison(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := homecalc.ComparePlans(c.Plan1, c.Plan2)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, res)
}

// respond writes the result once fully encoded, so that a result that cannot
// be encoded is still reported as an error.
func (h Handler) respond(w http.ResponseWriter, r *http.Request, result any) {
	cid := uuid.New().String()
	logger := h.Logger.With(zap.String("requestId", middleware.GetReqID(r.Context())), zap.String("cid", cid))

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(Response{CalculationID: cid, Result: result}); err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrUnrepresentable, err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(fmt.Errorf("write response: %w", err).Error())
		return
	}
	logger.Debug("calculation done", zap.String("path", r.URL.Path))
}

// fail writes err with the status matching its kind.
func (h Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	logger := h.Logger.With(zap.String("requestId", middleware.GetReqID(r.Context())))
	if status == http.StatusInternalServerError {
		logger.Error(err.Error())
	} else {
		logger.Info("rejected", zap.Int("status", status), zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Status: status, Message: err.Error()}); err != nil {
		logger.Error(fmt.Errorf("encode error response: %w", err).Error())
	}
}

// StatusOf maps a calculation error to an HTTP status.
func StatusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, plan.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, homecalc.ErrUnknownFund):
		return http.StatusNotFound
	case errors.Is(err, homecalc.ErrInsufficientPayment), errors.Is(err, ErrUnrepresentable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

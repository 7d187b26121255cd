package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/analytics"
	"github.com/finpay-hq/payroll-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

func (h *analyticsHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	// Defaults to the current period when month/year are omitted.
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		month = m
	}
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = y
	}

	result, err := h.analyticsService.Dashboard(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

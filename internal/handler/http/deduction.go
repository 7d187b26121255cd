package http

import (
	"encoding/json"
	"net/http"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/finpay-hq/payroll-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	ruleService deduction.RuleService
}

func NewDeductionHandler(ruleService deduction.RuleService) DeductionHandler {
	return &deductionHandlerImpl{ruleService: ruleService}
}

func (h *deductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ruleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction rule created", result)
}

func (h *deductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.ruleService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

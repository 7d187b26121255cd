package http

import (
	"encoding/json"
	"net/http"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/reimbursement"
	"github.com/finpay-hq/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReimbursementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
}

type reimbursementHandlerImpl struct {
	reimbursementService reimbursement.ReimbursementService
}

func NewReimbursementHandler(reimbursementService reimbursement.ReimbursementService) ReimbursementHandler {
	return &reimbursementHandlerImpl{reimbursementService: reimbursementService}
}

func (h *reimbursementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req reimbursement.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.reimbursementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reimbursement request submitted", result)
}

func (h *reimbursementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Reimbursement request ID is required", nil)
		return
	}

	result, err := h.reimbursementService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reimbursementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.reimbursementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reimbursementHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.reimbursementService.ListByEmployee(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reimbursementHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Reimbursement request ID is required", nil)
		return
	}

	var req reimbursement.ProcessRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.reimbursementService.Process(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

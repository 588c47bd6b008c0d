package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/payroll"
	"github.com/nimbushr/nimbus-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq payroll.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll record created", created)
}

// ListMine implements PayrollHandler.
func (h *PayrollHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	records, err := h.payrollService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.payrollService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	paid, err := h.payrollService.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("MarkPaid service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, paid)
}

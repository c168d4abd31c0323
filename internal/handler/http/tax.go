package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/tax"
	"github.com/cmlabs-hris/payroll-engine-go/internal/handler/http/response"
	taxservice "github.com/cmlabs-hris/payroll-engine-go/internal/service/tax"
)

type TaxHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
}

type taxHandlerImpl struct {
	calculator *taxservice.Calculator
}

func NewTaxHandler(calculator *taxservice.Calculator) TaxHandler {
	return &taxHandlerImpl{calculator: calculator}
}

func (h *taxHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req tax.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calculator.Calculate(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

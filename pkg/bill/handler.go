package bill

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fintrack/fintrack/internal/rest"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BillDTO struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"dueDate"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new bill")
	w.Header().Set("Content-Type", "application/json")

	var dto BillDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	bill, err := DTOToBill(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid dueDate format",
			Details: "dueDate must be formatted as YYYY-MM-DD",
		})
		return
	}

	created, err := handler.service.Add(r.Context(), bill)
	if err != nil {
		if errors.Is(err, ErrEmptyName) || errors.Is(err, ErrNegativeAmount) || errors.Is(err, ErrMissingDueDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(BillToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	bills, err := handler.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]BillDTO, 0, len(bills))
	for _, bill := range bills {
		dtos = append(dtos, BillToDTO(bill))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func BillToDTO(bill Bill) BillDTO {
	return BillDTO{
		ID:      bill.ID,
		Name:    bill.Name,
		Amount:  bill.Amount,
		DueDate: bill.DueDate.Format(dateLayout),
	}
}

func DTOToBill(dto BillDTO) (Bill, error) {
	var dueDate time.Time
	if dto.DueDate != "" {
		parsed, err := time.Parse(dateLayout, dto.DueDate)
		if err != nil {
			return Bill{}, err
		}
		dueDate = parsed
	}
	return Bill{
		ID:      dto.ID,
		Name:    dto.Name,
		Amount:  dto.Amount,
		DueDate: dueDate,
	}, nil
}

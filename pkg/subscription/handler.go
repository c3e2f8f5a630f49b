package subscription

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type SubscriptionDTO struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	RenewalDay int             `json:"renewalDay"`
	Icon       string          `json:"icon"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new subscription")
	w.Header().Set("Content-Type", "application/json")

	var dto SubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Add(r.Context(), Subscription{
		Name:       dto.Name,
		Amount:     dto.Amount,
		RenewalDay: dto.RenewalDay,
		Icon:       dto.Icon,
	})
	if err != nil {
		if errors.Is(err, ErrEmptyName) || errors.Is(err, ErrNegativeAmount) ||
			errors.Is(err, ErrInvalidRenewalDay) || errors.Is(err, ErrUnknownIcon) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SubscriptionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	subscriptions, err := handler.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]SubscriptionDTO, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		dtos = append(dtos, SubscriptionToDTO(subscription))
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

func SubscriptionToDTO(subscription Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:         subscription.ID,
		Name:       subscription.Name,
		Amount:     subscription.Amount,
		RenewalDay: subscription.RenewalDay,
		Icon:       subscription.Icon,
	}
}

package insight

import (
	"encoding/json"
	"net/http"
)

type AdvisoryDTO struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Color    string `json:"color"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	advisories, err := handler.service.Generate(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]AdvisoryDTO, 0, len(advisories))
	for _, advisory := range advisories {
		dtos = append(dtos, AdvisoryDTO{
			Severity: string(advisory.Severity),
			Title:    advisory.Title,
			Message:  advisory.Message,
			Color:    advisory.Color,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

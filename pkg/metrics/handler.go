package metrics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fintrack/fintrack/pkg/bill"
	"github.com/shopspring/decimal"
)

type SummaryDTO struct {
	GeneratedAt        time.Time                  `json:"generatedAt"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	MonthlyExpenses    decimal.Decimal            `json:"monthlyExpenses"`
	CategoryTotals     map[string]decimal.Decimal `json:"categoryTotals"`
	MonthlyLimit       decimal.Decimal            `json:"monthlyLimit"`
	BudgetUsagePercent decimal.Decimal            `json:"budgetUsagePercent"`
	SubscriptionCost   decimal.Decimal            `json:"subscriptionMonthlyCost"`
	UrgentBills        []bill.BillDTO             `json:"urgentBills"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := handler.service.GetSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SummaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SummaryToDTO(summary Summary) SummaryDTO {
	categoryTotals := make(map[string]decimal.Decimal, len(summary.CategoryTotals))
	for category, total := range summary.CategoryTotals {
		categoryTotals[string(category)] = total
	}
	urgentBills := make([]bill.BillDTO, 0, len(summary.UrgentBills))
	for _, b := range summary.UrgentBills {
		urgentBills = append(urgentBills, bill.BillToDTO(b))
	}
	return SummaryDTO{
		GeneratedAt:        summary.GeneratedAt,
		TotalExpenses:      summary.TotalExpenses,
		MonthlyExpenses:    summary.MonthlyExpenses,
		CategoryTotals:     categoryTotals,
		MonthlyLimit:       summary.MonthlyLimit,
		BudgetUsagePercent: summary.BudgetUsagePercent,
		SubscriptionCost:   summary.SubscriptionCost,
		UrgentBills:        urgentBills,
	}
}

package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Expenses
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Register).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Bills
	r.HandleFunc("/api/bills", deps.BillHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/bills", deps.BillHandler.Register).Methods("POST")
	r.HandleFunc("/api/bills/{id}", deps.BillHandler.Delete).Methods("DELETE")

	// Savings goals
	r.HandleFunc("/api/goals", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goals", deps.GoalHandler.Register).Methods("POST")
	r.HandleFunc("/api/goals/{id}", deps.GoalHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/goals/{id}/contributions", deps.GoalHandler.Contribute).Methods("POST")

	// Subscriptions
	r.HandleFunc("/api/subscriptions", deps.SubscriptionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/subscriptions", deps.SubscriptionHandler.Register).Methods("POST")
	r.HandleFunc("/api/subscriptions/{id}", deps.SubscriptionHandler.Delete).Methods("DELETE")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.Get).Methods("GET")
	r.HandleFunc("/api/settings", deps.SettingsHandler.Update).Methods("PUT")

	// Derived metrics and insights
	r.HandleFunc("/api/stats", deps.MetricsHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/insights", deps.InsightHandler.GetAll).Methods("GET")
}

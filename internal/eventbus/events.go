package eventbus

// Record-changed notifications published by the record store after every
// mutation. Consumers (the metrics cache) only care that the collection
// changed, so Data carries the affected record identifier when one exists.
const (
	ExpensesChanged      EventType = "expenses.changed"
	BillsChanged         EventType = "bills.changed"
	GoalsChanged         EventType = "goals.changed"
	SubscriptionsChanged EventType = "subscriptions.changed"
	SettingsChanged      EventType = "settings.changed"
)

// RecordTypes lists every record-changed event type, for consumers that
// subscribe to all collections.
func RecordTypes() []EventType {
	return []EventType{
		ExpensesChanged,
		BillsChanged,
		GoalsChanged,
		SubscriptionsChanged,
		SettingsChanged,
	}
}

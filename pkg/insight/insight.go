package insight

import (
	"time"

	"github.com/fintrack/fintrack/pkg/goal"
	"github.com/fintrack/fintrack/pkg/metrics"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeveritySuccess  Severity = "success"
	SeverityInfo     Severity = "info"
)

// Display color tokens per severity. Purely presentational; passed through
// opaquely to the client.
const (
	colorCritical = "#ef4444"
	colorWarning  = "#f59e0b"
	colorSuccess  = "#10b981"
	colorInfo     = "#3b82f6"
)

// Advisory is one generated, human-readable message about a detected
// financial condition.
type Advisory struct {
	Severity Severity
	Title    string
	Message  string
	Color    string
}

// Input is the snapshot a rule evaluation runs against: the derived metrics
// plus the raw records the rules still need directly.
type Input struct {
	Now     time.Time
	Metrics metrics.Summary
	Goals   []goal.Goal
}

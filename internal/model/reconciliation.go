package model

// Reconciliation results are derived per request and never persisted.

type ReconciliationStatus string

const (
	ReconciliationOK      ReconciliationStatus = "ok"
	ReconciliationSkipped ReconciliationStatus = "skipped"
	ReconciliationError   ReconciliationStatus = "error"
)

// StudentReconciliation is the per-student outcome of comparing the
// declared fixed schedule against persisted classes over a date range.
// Missing entries are synthesized, unsaved Class values; Extra entries
// are persisted recurring classes no expected occurrence accounts for.
type StudentReconciliation struct {
	StudentID     int64                `json:"student_id"`
	StudentName   string               `json:"student_name"`
	Status        ReconciliationStatus `json:"status"`
	Reason        string               `json:"reason,omitempty"` // set when skipped
	ExpectedCount int                  `json:"expected_count"`
	ActualCount   int                  `json:"actual_count"`
	MatchCount    int                  `json:"match_count"`
	Missing       []Class              `json:"missing"`
	Extra         []Class              `json:"extra"`
}

// MaterializeItemResult is the per-record outcome of a batch
// materialization. A duplicate key is a skip, not a failure.
type MaterializeItemResult string

const (
	MaterializeCreated MaterializeItemResult = "created"
	MaterializeSkipped MaterializeItemResult = "skipped"
	MaterializeError   MaterializeItemResult = "error"
)

type MaterializeItem struct {
	Date      string                `json:"date"` // "YYYY-MM-DD"
	StartTime string                `json:"start_time"`
	Result    MaterializeItemResult `json:"result"`
	Reason    string                `json:"reason,omitempty"`
}

type MaterializeOutcome struct {
	Created int               `json:"created"`
	Skipped int               `json:"skipped"`
	Errors  int               `json:"errors"`
	Items   []MaterializeItem `json:"items"`
}

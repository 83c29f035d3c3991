package constants

// RecordStatus is the canonical lifecycle status for rows in expenses.
type RecordStatus string

// Stable values (store these exact strings in DB).
const (
	StatusProcessing        RecordStatus = "PROCESSING"         // placeholder awaiting extraction
	StatusPendingConversion RecordStatus = "PENDING_CONVERSION" // inserted with provisional conversion
	StatusCompleted         RecordStatus = "COMPLETED"          // terminal success
	StatusError             RecordStatus = "ERROR"              // terminal failure
)

// AllStatuses lists every valid record status.
var AllStatuses = []RecordStatus{
	StatusProcessing,
	StatusPendingConversion,
	StatusCompleted,
	StatusError,
}

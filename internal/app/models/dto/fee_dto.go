package dto

// FeeRequest is the full field set for creating or replacing a fee record.
// Status may be pending, paid or overdue; blank defaults to pending.
// PaidDate is caller-supplied, never derived from status. Dates use the
// YYYY-MM-DD wire format; empty means unset.
type FeeRequest struct {
	StudentID int64   `json:"student_id" example:"1"`
	Amount    float64 `json:"amount" example:"500"`
	FeeType   string  `json:"fee_type" example:"Tuition"`
	Status    string  `json:"status" example:"pending" enums:"pending,paid,overdue"`
	DueDate   string  `json:"due_date" example:"2024-01-31"`
	PaidDate  string  `json:"paid_date" example:"2024-01-15"`
}

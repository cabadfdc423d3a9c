package models

import "time"

// Fee is a charge against one student. Status defaults to pending on
// creation; PaidDate is caller-supplied and never derived from Status.
type Fee struct {
	ID        int64      `json:"id"`
	StudentID int64      `json:"student_id"`
	Amount    float64    `json:"amount"`
	FeeType   string     `json:"fee_type"`
	Status    FeeStatus  `json:"status"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	PaidDate  *time.Time `json:"paid_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	StudentName string `json:"student_name,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
}

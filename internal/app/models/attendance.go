package models

import "time"

// Attendance marks one student in one class on one date. The
// (student_id, class_id, date) triple is unique; a second record for the
// same triple is rejected by the store, never merged.
type Attendance struct {
	ID        int64            `json:"id"`
	StudentID int64            `json:"student_id"`
	ClassID   int64            `json:"class_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`

	StudentName string `json:"student_name,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
}

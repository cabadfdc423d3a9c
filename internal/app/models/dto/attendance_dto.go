package dto

// AttendanceRequest is the full field set for creating or replacing an
// attendance record. Date uses the YYYY-MM-DD wire format and is required;
// at most one record exists per (student_id, class_id, date).
type AttendanceRequest struct {
	StudentID int64  `json:"student_id" example:"1"`
	ClassID   int64  `json:"class_id" example:"1"`
	Date      string `json:"date" example:"2024-03-01"`
	Status    string `json:"status" example:"present" enums:"present,absent,late"`
}

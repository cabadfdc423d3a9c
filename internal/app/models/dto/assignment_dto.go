package dto

// AssignmentRequest is the full field set for creating or replacing an
// assignment. DueDate uses the YYYY-MM-DD wire format; empty means no due
// date.
type AssignmentRequest struct {
	Title       string `json:"title" example:"Algebra worksheet"`
	Description string `json:"description" example:"Chapter 4 exercises"`
	ClassID     int64  `json:"class_id" example:"1"`
	DueDate     string `json:"due_date" example:"2024-06-30"`
}

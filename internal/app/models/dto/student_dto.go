package dto

// StudentRequest is the full field set for creating or replacing a
// student. Email, phone, roll number and address are optional; empty and
// absent are treated identically.
type StudentRequest struct {
	Name       string `json:"name" example:"Amir"`
	Email      string `json:"email" example:"amir@example.com"`
	Phone      string `json:"phone" example:"01700000000"`
	ClassID    int64  `json:"class_id" example:"1"`
	RollNumber string `json:"roll_number" example:"12"`
	Address    string `json:"address" example:"Dhaka"`
}

package models

import "time"

// Assignment belongs to one class. DueDate is optional.
type Assignment struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ClassID     int64      `json:"class_id"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	ClassName string `json:"class_name,omitempty"`
}

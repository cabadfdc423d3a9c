package models

import "time"

// Student belongs to exactly one class. ClassName is populated only on list
// reads, from a join against the owning class.
type Student struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	ClassID    int64     `json:"class_id"`
	RollNumber string    `json:"roll_number"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`

	ClassName string `json:"class_name,omitempty"`
}

package models

import "time"

// Class owns students, assignments and notes. Deleting a class cascades to
// everything it owns.
type Class struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

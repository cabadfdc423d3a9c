package models

import "time"

// Note is free-form class material attached to one class.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ClassID   int64     `json:"class_id"`
	CreatedAt time.Time `json:"created_at"`

	ClassName string `json:"class_name,omitempty"`
}

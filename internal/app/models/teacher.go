package models

import "time"

// Teacher is the sole credential holder of the service. The password field
// carries a bcrypt hash and never leaves the store layer.
type Teacher struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

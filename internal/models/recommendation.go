package models

import "time"

// Recommendation is a once-per-calendar-day generated suggestion derived
// from the user's recent workout history.
type Recommendation struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	CreatedAt      time.Time `json:"created"`
	Recommendation string    `json:"recommendation"`
}

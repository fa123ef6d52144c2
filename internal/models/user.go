package models

import "time"

type User struct {
	ID            string    `json:"id"`
	ClerkID       string    `json:"clerk_id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Photo         string    `json:"photo"`
	FirstName     string    `json:"first_name,omitempty"`
	LastName      string    `json:"last_name,omitempty"`
	PlanID        int       `json:"plan_id"`
	CreditBalance int       `json:"creditBalance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

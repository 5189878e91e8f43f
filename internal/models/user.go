package models

import "time"

type Role string

const (
	RoleHomeowner  Role = "homeowner"
	RoleContractor Role = "contractor"
	RoleAdmin      Role = "admin"
	RoleReviewer   Role = "reviewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleHomeowner, RoleContractor, RoleAdmin, RoleReviewer:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id" example:"3f1c2a9e-8d4b-4c1e-9a57-0b6f1e2d3c4a"`
	Name         string    `json:"name" example:"Dana Levi"`
	Email        string    `json:"email" example:"dana@example.com"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role" example:"homeowner"`
	CreatedAt    time.Time `json:"createdAt"`
}

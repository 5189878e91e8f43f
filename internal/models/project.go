package models

import "time"

type ProjectStatus string

const (
	StatusDraft       ProjectStatus = "draft"
	StatusSubmitted   ProjectStatus = "submitted"
	StatusUnderReview ProjectStatus = "under_review"
	StatusApproved    ProjectStatus = "approved"
	StatusRejected    ProjectStatus = "rejected"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Address struct {
	Street string `json:"street" example:"12 Herzl St"`
	City   string `json:"city" example:"Haifa"`
	State  string `json:"state" example:"North"`
	Zip    string `json:"zip" example:"3303012"`
}

type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title" example:"Backyard extension"`
	Description string        `json:"description"`
	Address     Address       `json:"address"`
	Status      ProjectStatus `json:"status" example:"draft"`
	OwnerID     string        `json:"ownerId"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

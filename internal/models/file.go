package models

import "time"

// File is the metadata record of an uploaded document. The content itself
// lives in byte storage under the same ID.
type File struct {
	ID           string    `json:"id" example:"V1StGXR8_Z5jdHi6B-myT"`
	Filename     string    `json:"filename" example:"V1StGXR8_Z5jdHi6B-myT-site_plan.pdf"`
	OriginalName string    `json:"originalName" example:"site plan.pdf"`
	MimeType     string    `json:"mimetype" example:"application/pdf"`
	Size         int64     `json:"size" example:"52431"`
	ProjectID    string    `json:"projectId"`
	UploadedBy   string    `json:"uploadedBy"`
	Path         string    `json:"path" example:"uploads/V1StGXR8_Z5jdHi6B-myT-site_plan.pdf"`
	CreatedAt    time.Time `json:"createdAt"`
}

package models

import "time"

// Document is an uploaded file attached to some entity (employee, course,
// program). Storage itself lives behind the backend.
type Document struct {
	ID           string     `json:"id"`
	EntityType   string     `json:"entity_type"`
	EntityID     string     `json:"entity_id"`
	DocumentType string     `json:"document_type"`
	FileName     string     `json:"file_name"`
	Description  string     `json:"description,omitempty"`
	Folder       string     `json:"folder,omitempty"`
	UploadedAt   *time.Time `json:"uploaded_at,omitempty"`
}

// DocumentUpload carries the metadata fields accompanying a file upload.
type DocumentUpload struct {
	EntityType   string `json:"entity_type" validate:"required"`
	EntityID     string `json:"entity_id" validate:"required"`
	DocumentType string `json:"document_type" validate:"required"`
	Description  string `json:"description"`
	Folder       string `json:"folder"`
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	EntityType   string
	EntityID     string
	DocumentType string
	Folder       string
	ListQuery
}

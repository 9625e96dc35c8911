package models

import "time"

// FloorPlanDB represents a floor plan metadata row in the database.
// The binary itself lives in the blob store under StoredPath.
type FloorPlanDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key
	UserID     int64     `json:"user_id" db:"user_id"`         // Owning user
	FileName   string    `json:"file_name" db:"file_name"`     // Original client-supplied name
	StoredPath string    `json:"file_path" db:"stored_path"`   // Generated name inside the blob store
	MimeType   string    `json:"file_type" db:"mime_type"`     // Server-sniffed content type
	SizeBytes  int64     `json:"file_size" db:"size_bytes"`    // Size in bytes
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"` // Upload timestamp
}

// UploadedFile describes a stored floor plan in upload responses.
type UploadedFile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

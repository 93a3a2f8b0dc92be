package model

import "time"

// Document records one uploaded file attached to a vehicle. It is embedded
// in the vehicle document's documents array; the bytes themselves live in
// blob storage under Path.
type Document struct {
	ID          string    `bson:"id" json:"id"`
	Path        string    `bson:"path" json:"path"`
	Filename    string    `bson:"filename" json:"filename"`
	Type        string    `bson:"type" json:"type"`
	Size        int64     `bson:"size" json:"size"`
	ContentType string    `bson:"contentType" json:"contentType"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

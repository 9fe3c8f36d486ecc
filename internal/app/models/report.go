package models

import "time"

const (
	ReportTypeClinicPatients   = "clinic-patients"
	ReportTypeClinicClinicians = "clinic-clinicians"
	ReportTypeClinicMerge      = "clinic-merge"
)

// Report is a generated file ready to be streamed or archived.
type Report struct {
	ID          string
	Type        string
	FileName    string
	ContentType string
	Content     []byte
	GeneratedAt time.Time
}

type ArchivedReport struct {
	ObjectName   string    `json:"objectName"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	DownloadURL  string    `json:"downloadUrl,omitempty"`
}

// StoredObject is an entry listed from object storage.
type StoredObject struct {
	Name         string
	Size         int64
	LastModified time.Time
}

package requests

import (
	"io"
)

type UploadMedicalImage struct {
	ClinicID    string    `validate:"required"`
	PatientID   string    `validate:"required,uuid"`
	UploadedBy  string    `validate:"required"`
	Kind        string    `validate:"required,oneof=xray intraoral panoramic cbct photo other"`
	Notes       string    `validate:"max=1000"`
	FileName    string    `validate:"required"`
	ContentType string    `validate:"required"`
	Size        int64     `validate:"gt=0"`
	File        io.Reader `validate:"-"`
}

type AnalyzeMedicalImage struct {
	ClinicID string `json:"-"`
	ImageID  string `json:"-"`
	Prompt   string `json:"prompt" validate:"max=2000"`
}

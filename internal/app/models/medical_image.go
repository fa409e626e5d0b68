package models

import (
	"dentaflow-service/internal/pkg/dto/responses"
	"time"
)

type MedicalImage struct {
	ID             string     `json:"id"`
	ClinicID       string     `json:"clinic_id"`
	PatientID      string     `json:"patient_id"`
	UploadedBy     string     `json:"uploaded_by"`
	Kind           string     `json:"kind"`
	ObjectKey      string     `json:"object_key"`
	ContentType    string     `json:"content_type"`
	SizeBytes      int64      `json:"size_bytes"`
	Notes          string     `json:"notes"`
	AnalysisResult *string    `json:"analysis_result,omitempty"`
	AnalyzedAt     *time.Time `json:"analyzed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (m *MedicalImage) ConvertToResponse() responses.MedicalImage {
	return responses.MedicalImage{
		ID:             m.ID,
		PatientID:      m.PatientID,
		UploadedBy:     m.UploadedBy,
		Kind:           m.Kind,
		ContentType:    m.ContentType,
		SizeBytes:      m.SizeBytes,
		Notes:          m.Notes,
		AnalysisResult: m.AnalysisResult,
		AnalyzedAt:     m.AnalyzedAt,
		CreatedAt:      m.CreatedAt,
	}
}

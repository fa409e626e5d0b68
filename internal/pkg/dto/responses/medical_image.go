package responses

import "time"

type MedicalImage struct {
	ID             string     `json:"id"`
	PatientID      string     `json:"patient_id"`
	UploadedBy     string     `json:"uploaded_by"`
	Kind           string     `json:"kind"`
	ContentType    string     `json:"content_type"`
	SizeBytes      int64      `json:"size_bytes"`
	Notes          string     `json:"notes,omitempty"`
	AnalysisResult *string    `json:"analysis_result,omitempty"`
	AnalyzedAt     *time.Time `json:"analyzed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MedicalImageURL struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type MedicalImageAnalysis struct {
	ImageID    string    `json:"image_id"`
	Model      string    `json:"model"`
	Result     string    `json:"result"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

package responses

import "time"

type Prescription struct {
	ID            string             `json:"id"`
	PatientID     string             `json:"patient_id"`
	PatientName   string             `json:"patient_name,omitempty"`
	DentistID     string             `json:"dentist_id"`
	DentistName   string             `json:"dentist_name,omitempty"`
	AppointmentID *string            `json:"appointment_id,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	IssuedAt      time.Time          `json:"issued_at"`
	Items         []PrescriptionItem `json:"items"`
}

type PrescriptionItem struct {
	ID           string `json:"id"`
	Medication   string `json:"medication"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

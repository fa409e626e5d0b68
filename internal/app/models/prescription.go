package models

import (
	"dentaflow-service/internal/pkg/dto/responses"
	"time"
)

type Prescription struct {
	ID            string             `json:"id"`
	ClinicID      string             `json:"clinic_id"`
	PatientID     string             `json:"patient_id"`
	PatientName   string             `json:"patient_name"`
	DentistID     string             `json:"dentist_id"`
	DentistName   string             `json:"dentist_name"`
	AppointmentID *string            `json:"appointment_id,omitempty"`
	Notes         string             `json:"notes"`
	IssuedAt      time.Time          `json:"issued_at"`
	Items         []PrescriptionItem `json:"items"`
}

type PrescriptionItem struct {
	ID             string `json:"id"`
	PrescriptionID string `json:"prescription_id"`
	Medication     string `json:"medication"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	Instructions   string `json:"instructions"`
}

func (p *Prescription) ConvertToResponse() *responses.Prescription {
	items := make([]responses.PrescriptionItem, len(p.Items))
	for i, item := range p.Items {
		items[i] = responses.PrescriptionItem{
			ID:           item.ID,
			Medication:   item.Medication,
			Dosage:       item.Dosage,
			Frequency:    item.Frequency,
			Duration:     item.Duration,
			Instructions: item.Instructions,
		}
	}
	return &responses.Prescription{
		ID:            p.ID,
		PatientID:     p.PatientID,
		PatientName:   p.PatientName,
		DentistID:     p.DentistID,
		DentistName:   p.DentistName,
		AppointmentID: p.AppointmentID,
		Notes:         p.Notes,
		IssuedAt:      p.IssuedAt,
		Items:         items,
	}
}
